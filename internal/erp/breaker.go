package erp

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerClient wraps a Client with a circuit breaker so a struggling ERP
// does not get hammered by retries from the API and the report worker.
type BreakerClient struct {
	inner Client
	cb    *gobreaker.CircuitBreaker
}

func NewBreakerClient(inner Client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        "ERP-API",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if failure rate is bigger than 50% after at least 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &BreakerClient{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

func (c *BreakerClient) FetchCheckins(ctx context.Context, employeeID string, from, to time.Time) ([]CheckinRecord, error) {
	res, err := c.cb.Execute(func() (interface{}, error) {
		return c.inner.FetchCheckins(ctx, employeeID, from, to)
	})
	if err != nil {
		return nil, err
	}
	return res.([]CheckinRecord), nil
}
