package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"worklog.service/internal/core/model"
)

func TestRenderReportTextEmpty(t *testing.T) {
	body := RenderReportText(nil, nil)

	assert.Contains(t, body, "No punch records were found")
}

func TestRenderReportText(t *testing.T) {
	summaries := []model.DaySummary{
		{
			Date:                "2026-01-19",
			EmployeeName:        "Jane Doe",
			OfficeSpanFormatted: "9h 30m",
			ActualWorkFormatted: "9h 0m",
			BreakFormatted:      "30m",
			IsOvertime:          true,
			OvertimeHours:       1.0,
			GoalMet:             true,
		},
		{
			Date:                "2026-01-20",
			EmployeeName:        "Jane Doe",
			OfficeSpanFormatted: "7h",
			ActualWorkFormatted: "6h 30m",
			BreakFormatted:      "30m",
			RemainingFormatted:  "2h",
			CurrentlyWorking:    true,
			LeaveByTime:         "7:00 PM",
		},
	}
	stats := &model.AggregateStats{
		DaysTracked:         2,
		TotalFormatted:      "16h 30m",
		ExpectedFormatted:   "18h",
		DifferenceFormatted: "1h 30m",
	}

	body := RenderReportText(summaries, stats)

	assert.Contains(t, body, "2026-01-19  Jane Doe")
	assert.Contains(t, body, "Overtime: 1.00h")
	assert.Contains(t, body, "Remaining to goal: 2h")
	assert.Contains(t, body, "leave by 7:00 PM")
	assert.Contains(t, body, "Totals over 2 day(s): 16h 30m tracked, 18h expected.")
	assert.Contains(t, body, "under target")
}
