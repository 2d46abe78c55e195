package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	text string
	err  error
}

func (s *stubSource) FetchPunchText(ctx context.Context, employeeID string, from, to time.Time) (string, error) {
	return s.text, s.err
}

func frozenClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSummarizeText(t *testing.T) {
	now := time.Date(2026, time.January, 22, 12, 0, 0, 0, time.Local)
	svc := NewSummaryServiceWithClock(&stubSource{}, frozenClock(now))

	raw := "Jane Doe IN 19-01-2026 09:00:00\nJane Doe OUT 19-01-2026 17:00:00\n"
	summaries, stats := svc.SummarizeText(context.Background(), raw)

	require.Len(t, summaries, 1)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.DaysTracked)
	assert.InDelta(t, 8.0, summaries[0].OfficeSpanHours, 0.001)
}

func TestSummarizeTextNothingRecognizable(t *testing.T) {
	svc := NewSummaryServiceWithClock(&stubSource{}, frozenClock(time.Now()))

	summaries, stats := svc.SummarizeText(context.Background(), "no punches here")

	assert.Empty(t, summaries)
	// Aggregate ratios are undefined over zero days; the block is withheld.
	assert.Nil(t, stats)
}

func TestSummarizeEmployee(t *testing.T) {
	now := time.Date(2026, time.January, 19, 18, 0, 0, 0, time.Local)
	source := &stubSource{text: "Jane Doe\nIN\n19-01-2026 09:00:00\n\nJane Doe\nOUT\n19-01-2026 17:00:00\n"}
	svc := NewSummaryServiceWithClock(source, frozenClock(now))

	summaries, stats, err := svc.SummarizeEmployee(context.Background(), "HR-EMP-00042", now.AddDate(0, 0, -3), now)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, stats)
	assert.Equal(t, "Jane Doe", summaries[0].EmployeeName)
}

func TestSummarizeEmployeeSourceError(t *testing.T) {
	source := &stubSource{err: errors.New("boom")}
	svc := NewSummaryService(source)

	_, _, err := svc.SummarizeEmployee(context.Background(), "X", time.Now(), time.Now())

	require.Error(t, err)
	// The failing stage is named in the wrapped error.
	assert.Contains(t, err.Error(), "punch source")
}

func TestSummarizeTextSharesOneClockSample(t *testing.T) {
	// Both the open interval and the aggregate projection must come from the
	// same sampled instant.
	now := time.Date(2026, time.January, 19, 13, 0, 0, 0, time.Local)
	svc := NewSummaryServiceWithClock(&stubSource{}, frozenClock(now))

	raw := "Jane Doe IN 19-01-2026 09:00:00\n"
	summaries, stats := svc.SummarizeText(context.Background(), raw)

	require.Len(t, summaries, 1)
	require.NotNil(t, stats)
	assert.True(t, summaries[0].CurrentlyWorking)
	assert.InDelta(t, 4.0, summaries[0].OfficeSpanHours, 0.001)
	assert.InDelta(t, 5.0, stats.TodayRemainingHours, 0.001)
	assert.InDelta(t, 9.0, stats.ProjectedTotalHours, 0.001)
}
