package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"worklog.service/internal/core"
	"worklog.service/internal/ports/messaging"
)

// ReportProcessor handles jobs from the report queue: pull the employee's
// punch data from the ERP, run the summary pipeline, and email the result.
// The ERP call goes through the circuit-breaker client wired in at startup.
type ReportProcessor struct {
	service *core.SummaryService
	email   core.EmailService
}

// NewProcessor creates a new processor for the report queue.
func NewProcessor(service *core.SummaryService, email core.EmailService) *ReportProcessor {
	return &ReportProcessor{
		service: service,
		email:   email,
	}
}

// Process is the core logic for one report request. Malformed messages are
// never retried; transient ERP or SES failures retry with exponential
// backoff driven by the SQS receive count.
func (p *ReportProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.ReportRequestedEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal report event")
		return false, 0, err
	}

	from, err := time.ParseInLocation("2006-01-02", event.FromDate, time.Local)
	if err != nil {
		return false, 0, fmt.Errorf("report event has bad fromDate %q: %w", event.FromDate, err)
	}
	to, err := time.ParseInLocation("2006-01-02", event.ToDate, time.Local)
	if err != nil {
		return false, 0, fmt.Errorf("report event has bad toDate %q: %w", event.ToDate, err)
	}

	log.Ctx(ctx).Info().
		Str("employee_id", event.EmployeeID).
		Str("from", event.FromDate).
		Str("to", event.ToDate).
		Msg("Processing report request")

	summaries, stats, err := p.service.SummarizeEmployee(ctx, event.EmployeeID, from, to)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			log.Ctx(ctx).Warn().Msg("Circuit breaker is OPEN; skipping ERP call")
		}
		delay := calculateBackoff(receiveCount(msg))
		return true, delay, err
	}

	if err := p.email.SendWorkReport(ctx, event.Email, summaries, stats); err != nil {
		delay := calculateBackoff(receiveCount(msg))
		return true, delay, fmt.Errorf("failed to send report email: %w", err)
	}

	return false, 0, nil
}

// receiveCount reads how many times SQS has delivered this message.
func receiveCount(msg types.Message) int {
	v, ok := msg.Attributes[string(types.MessageSystemAttributeNameApproximateReceiveCount)]
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// calculateBackoff determines how long to wait before retrying a failed job.
// It increases the delay exponentially with each retry.
func calculateBackoff(retryCount int) int32 {
	backoff := int32(math.Pow(2, float64(retryCount)) * 10)
	if backoff > 3600 {
		return 3600 // max at 1 hour
	}
	return backoff
}
