package erp

import (
	"strings"
	"time"
)

// erpTimeLayouts are the stamp formats the ERP has been seen returning.
var erpTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ConvertToLogText renders checkin records in the multi-line punch-log
// format, one record per three lines (name, IN/OUT, DD-MM-YYYY HH:MM:SS),
// followed by the decorative trailer lines the real attendance page shows.
// The parser skips the trailers; emitting them keeps this output
// byte-compatible with a page scrape of the same data.
func ConvertToLogText(records []CheckinRecord) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.EmployeeName)
		b.WriteString("\n")
		b.WriteString(r.LogType)
		b.WriteString("\n")
		b.WriteString(formatLogTime(r.Time))
		b.WriteString("\n")
		b.WriteString("Approved\n1 h\n0\n·\n\n")
	}
	return b.String()
}

// formatLogTime converts an ERP stamp to DD-MM-YYYY HH:MM:SS. Stamps that
// parse under none of the known layouts pass through unchanged; the parser
// will discard the record downstream.
func formatLogTime(stamp string) string {
	for _, layout := range erpTimeLayouts {
		if t, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return t.Format("02-01-2006 15:04:05")
		}
	}
	return stamp
}
