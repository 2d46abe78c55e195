package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Producer publishes report events through a MessageSender.
type Producer struct {
	sender         MessageSender
	reportQueueURL string
}

func NewProducer(sender MessageSender, reportQueueURL string) *Producer {
	return &Producer{
		sender:         sender,
		reportQueueURL: reportQueueURL,
	}
}

// NewSQSProducer builds a Producer backed by AWS SQS.
func NewSQSProducer(client SQSClient, reportQueueURL string) *Producer {
	return NewProducer(&SQSSender{client: client}, reportQueueURL)
}

func (p *Producer) PublishReportRequest(ctx context.Context, event ReportRequestedEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}

	// Enrich the current span with the employee id for trace search.
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() && event.EmployeeID != "" {
		span.SetAttributes(attribute.String("app.employeeId", event.EmployeeID))
	}

	if err := p.sender.SendMessage(ctx, p.reportQueueURL, b); err != nil {
		return fmt.Errorf("failed to send report request: %w", err)
	}
	return nil
}
