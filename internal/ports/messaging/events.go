package messaging

import "time"

// ReportRequestedEvent is the JSON payload sent via SQS for the report queue.
// Dates are YYYY-MM-DD, interpreted as an inclusive local range.
type ReportRequestedEvent struct {
	EmployeeID  string    `json:"employeeId"`
	Email       string    `json:"email"`
	FromDate    string    `json:"fromDate"`
	ToDate      string    `json:"toDate"`
	RequestedAt time.Time `json:"requestedAt"`
}
