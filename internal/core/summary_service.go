package core

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"worklog.service/internal/core/engine"
	"worklog.service/internal/core/model"
)

// PunchSource supplies raw punch-log text for an employee and date range.
// The ERP adapter implements it; anything else that can produce the text
// format (a page scrape, a pasted blob server) would fit the same port.
type PunchSource interface {
	FetchPunchText(ctx context.Context, employeeID string, from, to time.Time) (string, error)
}

// SummaryService runs the punch pipeline for callers. It samples the clock
// exactly once per invocation so every now-dependent field of one response is
// computed against the same instant.
type SummaryService struct {
	source PunchSource
	nowFn  func() time.Time
}

// NewSummaryService wires the service with the real clock.
func NewSummaryService(source PunchSource) *SummaryService {
	return NewSummaryServiceWithClock(source, time.Now)
}

// NewSummaryServiceWithClock lets tests freeze the sampled instant.
func NewSummaryServiceWithClock(source PunchSource, nowFn func() time.Time) *SummaryService {
	return &SummaryService{source: source, nowFn: nowFn}
}

// SummarizeText computes day summaries and aggregate stats from raw punch
// text. Unparseable content is not an error: it yields zero summaries and a
// nil stats pointer (the aggregate ratios are undefined over zero days, so
// the block is withheld entirely rather than serialized with NaN).
func (s *SummaryService) SummarizeText(ctx context.Context, raw string) ([]model.DaySummary, *model.AggregateStats) {
	_, span := otel.Tracer("summary-service").Start(ctx, "compute_summaries")
	defer span.End()

	now := s.nowFn()
	res := engine.Compute(raw, now)

	span.SetAttributes(
		attribute.Int("app.daysTracked", len(res.Summaries)),
		attribute.Int("app.rawBytes", len(raw)),
	)
	log.Ctx(ctx).Debug().Int("days", len(res.Summaries)).Msg("Computed punch summaries")

	if len(res.Summaries) == 0 {
		return res.Summaries, nil
	}
	return res.Summaries, &res.Stats
}

// SummarizeEmployee pulls the punch text for one employee from the configured
// source and runs the same pipeline over it.
func (s *SummaryService) SummarizeEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]model.DaySummary, *model.AggregateStats, error) {
	raw, err := s.source.FetchPunchText(ctx, employeeID, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("punch source: fetching text for %s: %w", employeeID, err)
	}

	summaries, stats := s.SummarizeText(ctx, raw)
	return summaries, stats, nil
}
