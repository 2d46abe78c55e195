package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"worklog.service/internal/core/model"
	"worklog.service/pkg/telemetry"
)

type EmailService interface {
	SendWorkReport(ctx context.Context, to string, summaries []model.DaySummary, stats *model.AggregateStats) error
}

type SESEmailService struct {
	client *ses.Client
	sender string
}

func NewSESEmailService(client *ses.Client, sender string) *SESEmailService {
	return &SESEmailService{client: client, sender: sender}
}

func (s *SESEmailService) SendWorkReport(ctx context.Context, to string, summaries []model.DaySummary, stats *model.AggregateStats) error {
	tracer := otel.Tracer("ses-email-service")
	ctx, span := tracer.Start(ctx, "send_email", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	if empID := telemetry.GetEmployeeIDFromContext(ctx); empID != "" {
		span.SetAttributes(attribute.String("app.employeeId", empID))
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String("Work Time Report"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(RenderReportText(summaries, stats)),
				},
			},
		},
	}

	_, err := s.client.SendEmail(ctx, input)
	return err
}

// RenderReportText renders the plain-text report body sent by the worker.
func RenderReportText(summaries []model.DaySummary, stats *model.AggregateStats) string {
	var b strings.Builder

	b.WriteString("Hello,\n\nHere is your work time report.\n\n")

	if len(summaries) == 0 {
		b.WriteString("No punch records were found for the requested period.\n")
		return b.String()
	}

	for _, s := range summaries {
		fmt.Fprintf(&b, "%s  %s\n", s.Date, s.EmployeeName)
		fmt.Fprintf(&b, "  Office time: %s  Work: %s  Break: %s\n",
			s.OfficeSpanFormatted, s.ActualWorkFormatted, s.BreakFormatted)
		switch {
		case s.IsOvertime:
			fmt.Fprintf(&b, "  Overtime: %.2fh\n", s.OvertimeHours)
		case s.GoalMet:
			b.WriteString("  Goal reached\n")
		default:
			fmt.Fprintf(&b, "  Remaining to goal: %s\n", s.RemainingFormatted)
		}
		if s.CurrentlyWorking && s.LeaveByTime != "" {
			fmt.Fprintf(&b, "  Currently working, leave by %s\n", s.LeaveByTime)
		}
		b.WriteString("\n")
	}

	if stats != nil {
		fmt.Fprintf(&b, "Totals over %d day(s): %s tracked, %s expected.\n",
			stats.DaysTracked, stats.TotalFormatted, stats.ExpectedFormatted)
		if stats.IsOvertime {
			fmt.Fprintf(&b, "You are %s over target.\n", stats.DifferenceFormatted)
		} else {
			fmt.Fprintf(&b, "You are %s under target.\n", stats.DifferenceFormatted)
		}
	}

	return b.String()
}
