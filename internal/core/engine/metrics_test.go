package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog.service/internal/core/model"
)

func TestComputeDayMetricsClosedDay(t *testing.T) {
	// 10:54:14 -> 13:31:15 is 2h 37m 1s, i.e. ~2.62h.
	events := []model.PunchEvent{
		punch("Dheeraj Deepak Mathur", model.DirectionIn, 10, 54, 14),
		punch("Dheeraj Deepak Mathur", model.DirectionOut, 13, 31, 15),
	}
	now := localTime(2026, time.January, 19, 18, 0, 0)
	key := GroupKey{Date: "2026-01-19", EmployeeName: "Dheeraj Deepak Mathur"}

	s := ComputeDayMetrics(key, events, now)

	assert.InDelta(t, 2.62, s.ActualWorkHours, 0.001)
	assert.InDelta(t, 2.62, s.OfficeSpanHours, 0.001)
	assert.InDelta(t, 0, s.BreakHours, 0.001)
	assert.False(t, s.BreakExceeded)
	assert.False(t, s.IsOvertime)
	assert.Zero(t, s.OvertimeHours)
	assert.False(t, s.GoalMet)
	assert.InDelta(t, 9.0-2.6169, s.RemainingHours, 0.01)
	assert.True(t, s.IsToday)
	assert.False(t, s.CurrentlyWorking)
	assert.Empty(t, s.LeaveByTime)

	require.Len(t, s.Intervals, 1)
	assert.Equal(t, "10:54", s.Intervals[0].Start)
	assert.Equal(t, "13:31", s.Intervals[0].End)
	assert.Equal(t, "2h 37m", FormatHoursMinutes(s.Intervals[0].DurationHours))
}

func TestComputeDayMetricsOpenSessionToday(t *testing.T) {
	events := []model.PunchEvent{
		punch("Jane", model.DirectionIn, 10, 0, 0),
	}
	now := localTime(2026, time.January, 19, 12, 0, 0)
	key := GroupKey{Date: "2026-01-19", EmployeeName: "Jane"}

	s := ComputeDayMetrics(key, events, now)

	assert.True(t, s.CurrentlyWorking)
	assert.InDelta(t, 2.0, s.OfficeSpanHours, 0.001)
	assert.InDelta(t, 2.0, s.ActualWorkHours, 0.001)
	assert.InDelta(t, 7.0, s.RemainingHours, 0.001)
	// 12:00 + 7h remaining to the 9h span goal.
	assert.Equal(t, "7:00 PM", s.LeaveByTime)

	require.Len(t, s.Intervals, 1)
	assert.Equal(t, model.OpenEndLabel, s.Intervals[0].End)
}

func TestComputeDayMetricsOpenSessionAdvancesWithNow(t *testing.T) {
	events := []model.PunchEvent{
		punch("Jane", model.DirectionIn, 10, 0, 0),
	}
	key := GroupKey{Date: "2026-01-19", EmployeeName: "Jane"}
	now := localTime(2026, time.January, 19, 12, 0, 0)

	before := ComputeDayMetrics(key, events, now)
	after := ComputeDayMetrics(key, events, now.Add(time.Second))

	assert.Greater(t, after.OfficeSpanHours-before.OfficeSpanHours, 0.0)
	// Leave-by tracks the same absolute instant: remaining shrinks exactly
	// as now advances, so the projected clock value stays put.
	assert.Equal(t, before.LeaveByTime, after.LeaveByTime)
}

func TestComputeDayMetricsLeaveByGoalAlreadyMet(t *testing.T) {
	events := []model.PunchEvent{
		punch("Jane", model.DirectionIn, 8, 0, 0),
	}
	now := localTime(2026, time.January, 19, 17, 30, 0)
	key := GroupKey{Date: "2026-01-19", EmployeeName: "Jane"}

	s := ComputeDayMetrics(key, events, now)

	assert.True(t, s.GoalMet)
	assert.True(t, s.IsOvertime) // 9.5h of actual work
	// Goal reached: leave-by collapses to now.
	assert.Equal(t, "5:30 PM", s.LeaveByTime)
}

func TestComputeDayMetricsStaleOpenInDiscarded(t *testing.T) {
	// Unmatched IN on a past date produces no interval at all.
	events := []model.PunchEvent{
		punch("Jane", model.DirectionIn, 9, 0, 0),
		punch("Jane", model.DirectionOut, 12, 0, 0),
		punch("Jane", model.DirectionIn, 13, 0, 0),
	}
	now := localTime(2026, time.January, 20, 10, 0, 0)
	key := GroupKey{Date: "2026-01-19", EmployeeName: "Jane"}

	s := ComputeDayMetrics(key, events, now)

	assert.False(t, s.CurrentlyWorking)
	assert.Empty(t, s.LeaveByTime)
	require.Len(t, s.Intervals, 1)
	assert.InDelta(t, 3.0, s.ActualWorkHours, 0.001)
	// Office span still runs first IN to last OUT.
	assert.InDelta(t, 3.0, s.OfficeSpanHours, 0.001)
}

func TestComputeDayMetricsBreakExceeded(t *testing.T) {
	events := []model.PunchEvent{
		punch("Jane", model.DirectionIn, 9, 0, 0),
		punch("Jane", model.DirectionOut, 12, 0, 0),
		punch("Jane", model.DirectionIn, 13, 30, 0),
		punch("Jane", model.DirectionOut, 17, 0, 0),
	}
	now := localTime(2026, time.January, 19, 18, 0, 0)
	key := GroupKey{Date: "2026-01-19", EmployeeName: "Jane"}

	s := ComputeDayMetrics(key, events, now)

	assert.InDelta(t, 8.0, s.OfficeSpanHours, 0.001)
	assert.InDelta(t, 6.5, s.ActualWorkHours, 0.001)
	assert.InDelta(t, 1.5, s.BreakHours, 0.001)
	assert.True(t, s.BreakExceeded)
}

func TestComputeDayMetricsNoInAtAll(t *testing.T) {
	events := []model.PunchEvent{
		punch("Jane", model.DirectionOut, 9, 0, 0),
	}
	now := localTime(2026, time.January, 19, 18, 0, 0)
	key := GroupKey{Date: "2026-01-19", EmployeeName: "Jane"}

	s := ComputeDayMetrics(key, events, now)

	assert.Zero(t, s.OfficeSpanHours)
	assert.Zero(t, s.ActualWorkHours)
	assert.Empty(t, s.Intervals)
	assert.False(t, s.CurrentlyWorking)
	assert.InDelta(t, 9.0, s.RemainingHours, 0.001)
}
