// Package erp talks to the external ERP attendance system (a Frappe-style
// HTTP API) and converts its checkin records into the raw punch-log text the
// engine parses. The rest of the service only sees the PunchSource port.
package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// CheckinRecord mirrors the fields we request from the ERP "Employee Checkin"
// doctype.
type CheckinRecord struct {
	Name         string `json:"name"`
	Employee     string `json:"employee"`
	EmployeeName string `json:"employee_name"`
	LogType      string `json:"log_type"`
	Time         string `json:"time"`
}

type checkinResponse struct {
	Data []CheckinRecord `json:"data"`
}

// Client is the contract for fetching checkin records.
type Client interface {
	FetchCheckins(ctx context.Context, employeeID string, from, to time.Time) ([]CheckinRecord, error)
}

// HTTPClient calls the ERP REST API with token auth.
type HTTPClient struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	apiSecret string
}

// NewHTTPClient builds a client for the given ERP base URL. Requests carry
// otel spans via the instrumented transport.
func NewHTTPClient(baseURL, apiKey, apiSecret string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}

// FetchCheckins pulls the employee's checkin records for the date range,
// oldest first.
func (c *HTTPClient) FetchCheckins(ctx context.Context, employeeID string, from, to time.Time) ([]CheckinRecord, error) {
	filters, err := json.Marshal([]any{
		[]any{"employee", "=", employeeID},
		[]any{"time", "between", []string{from.Format("2006-01-02"), to.Format("2006-01-02")}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal erp filters: %w", err)
	}

	fields := `["name","employee","employee_name","log_type","time"]`

	q := url.Values{}
	q.Set("filters", string(filters))
	q.Set("fields", fields)
	q.Set("limit_page_length", "1000")
	q.Set("order_by", "time asc")

	endpoint := c.baseURL + "/api/resource/Employee Checkin?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create erp request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("token %s:%s", c.apiKey, c.apiSecret))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call erp api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("erp api returned non-successful status code: %d", resp.StatusCode)
	}

	var body checkinResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode erp response: %w", err)
	}
	return body.Data, nil
}
