package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog.service/internal/core"
	"worklog.service/internal/core/model"
)

type stubPunchSource struct {
	text string
	err  error
}

func (s *stubPunchSource) FetchPunchText(ctx context.Context, employeeID string, from, to time.Time) (string, error) {
	return s.text, s.err
}

type stubEmailService struct {
	to        string
	summaries []model.DaySummary
	sent      int
	err       error
}

func (s *stubEmailService) SendWorkReport(ctx context.Context, to string, summaries []model.DaySummary, stats *model.AggregateStats) error {
	s.to = to
	s.summaries = summaries
	s.sent++
	return s.err
}

func newProcessor(source *stubPunchSource, email *stubEmailService) *ReportProcessor {
	now := time.Date(2026, time.January, 22, 12, 0, 0, 0, time.Local)
	svc := core.NewSummaryServiceWithClock(source, func() time.Time { return now })
	return NewProcessor(svc, email)
}

func reportMessage(body string) types.Message {
	return types.Message{Body: aws.String(body)}
}

const validEvent = `{"employeeId":"HR-EMP-00042","email":"jane@example.com","fromDate":"2026-01-19","toDate":"2026-01-21"}`

func TestProcess(t *testing.T) {
	source := &stubPunchSource{text: "Jane Doe IN 19-01-2026 09:00:00\nJane Doe OUT 19-01-2026 17:00:00\n"}
	email := &stubEmailService{}
	p := newProcessor(source, email)

	retry, delay, err := p.Process(context.Background(), reportMessage(validEvent))

	require.NoError(t, err)
	assert.False(t, retry)
	assert.EqualValues(t, 0, delay)
	assert.Equal(t, 1, email.sent)
	assert.Equal(t, "jane@example.com", email.to)
	require.Len(t, email.summaries, 1)
	assert.Equal(t, "Jane Doe", email.summaries[0].EmployeeName)
}

func TestProcessMalformedMessageNotRetried(t *testing.T) {
	p := newProcessor(&stubPunchSource{}, &stubEmailService{})

	for name, body := range map[string]string{
		"not json": "{",
		"bad from": `{"employeeId":"X","email":"x@example.com","fromDate":"19-01-2026","toDate":"2026-01-21"}`,
		"bad to":   `{"employeeId":"X","email":"x@example.com","fromDate":"2026-01-19","toDate":"soon"}`,
	} {
		t.Run(name, func(t *testing.T) {
			retry, _, err := p.Process(context.Background(), reportMessage(body))

			require.Error(t, err)
			assert.False(t, retry)
		})
	}
}

func TestProcessERPFailureRetried(t *testing.T) {
	source := &stubPunchSource{err: errors.New("erp down")}
	email := &stubEmailService{}
	p := newProcessor(source, email)

	msg := reportMessage(validEvent)
	msg.Attributes = map[string]string{
		string(types.MessageSystemAttributeNameApproximateReceiveCount): "3",
	}

	retry, delay, err := p.Process(context.Background(), msg)

	require.Error(t, err)
	assert.True(t, retry)
	assert.EqualValues(t, 80, delay)
	assert.Equal(t, 0, email.sent)
}

func TestProcessEmailFailureRetried(t *testing.T) {
	source := &stubPunchSource{text: "Jane Doe IN 19-01-2026 09:00:00\n"}
	email := &stubEmailService{err: errors.New("ses throttled")}
	p := newProcessor(source, email)

	retry, delay, err := p.Process(context.Background(), reportMessage(validEvent))

	require.Error(t, err)
	assert.True(t, retry)
	assert.EqualValues(t, 20, delay)
}

func TestCalculateBackoff(t *testing.T) {
	assert.EqualValues(t, 20, calculateBackoff(1))
	assert.EqualValues(t, 40, calculateBackoff(2))
	assert.EqualValues(t, 1280, calculateBackoff(7))
	assert.EqualValues(t, 3600, calculateBackoff(12))
}

func TestReceiveCount(t *testing.T) {
	assert.Equal(t, 1, receiveCount(types.Message{}))
	assert.Equal(t, 1, receiveCount(types.Message{Attributes: map[string]string{
		string(types.MessageSystemAttributeNameApproximateReceiveCount): "junk",
	}}))
	assert.Equal(t, 5, receiveCount(types.Message{Attributes: map[string]string{
		string(types.MessageSystemAttributeNameApproximateReceiveCount): "5",
	}}))
}
