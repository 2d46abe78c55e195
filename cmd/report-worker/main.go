// Entry point for the report worker: consumes queued report requests,
// computes summaries from ERP punch data and emails them.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/rs/zerolog/log"

	"worklog.service/internal/config"
	"worklog.service/internal/core"
	"worklog.service/internal/erp"
	"worklog.service/internal/worker"
	"worklog.service/internal/worker/report"
	"worklog.service/pkg/aws"
	"worklog.service/pkg/logger"
	"worklog.service/pkg/telemetry"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}

	logger.Setup(cfg.IsLocalDev)

	shutdownTracer, err := telemetry.InitTracer("worklog-report-worker", cfg.IsLocalDev, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to init tracer")
	}
	defer func() {
		_ = shutdownTracer(context.Background())
	}()

	// AWS SDK Config
	awsCfg, err := aws.NewAWSConfig(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load SDK config")
	}

	// Initialize dependencies
	sqsClient := sqs.NewFromConfig(awsCfg)
	sesClient := ses.NewFromConfig(awsCfg)

	erpClient := erp.NewBreakerClient(erp.NewHTTPClient(cfg.ERPBaseURL, cfg.ERPAPIKey, cfg.ERPAPISecret))
	summaryService := core.NewSummaryService(erp.NewSource(erpClient))
	emailService := core.NewSESEmailService(sesClient, cfg.ReportSender)
	processor := report.NewProcessor(summaryService, emailService)

	// Start worker
	ctx, cancel := context.WithCancel(context.Background())
	app := worker.NewWorker(sqsClient, cfg.ReportSQSQueueURL, processor)

	go func() {
		app.Start(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down worker...")

	// Cancel the context to signal the worker to stop polling.
	cancel()

	log.Info().Msg("Worker exited gracefully")
}
