package erp

import (
	"context"
	"time"
)

// Source adapts a Client to the core.PunchSource port: fetch checkin records,
// render them as raw punch-log text.
type Source struct {
	client Client
}

func NewSource(client Client) *Source {
	return &Source{client: client}
}

func (s *Source) FetchPunchText(ctx context.Context, employeeID string, from, to time.Time) (string, error) {
	records, err := s.client.FetchCheckins(ctx, employeeID, from, to)
	if err != nil {
		return "", err
	}
	return ConvertToLogText(records), nil
}
