package model

import (
	"time"
)

// Direction says whether a punch is a clock-in or a clock-out.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// OpenEndLabel marks a work interval whose session has no OUT punch yet.
const OpenEndLabel = "Now"

// PunchEvent is one observed clock action, as extracted from the raw log text.
// The timestamp is local wall clock; no timezone conversion happens anywhere.
type PunchEvent struct {
	EmployeeName string    `json:"employeeName"`
	Direction    Direction `json:"direction"`
	Timestamp    time.Time `json:"timestamp"`
}

// WorkInterval is one contiguous work session within a day. End is either an
// HH:MM label or OpenEndLabel for a session that is still running.
type WorkInterval struct {
	Start         string  `json:"start"`
	End           string  `json:"end"`
	DurationHours float64 `json:"durationHours"`
}

// DaySummary is the per-(date, employee) reporting unit. Hour fields are
// rounded to two decimals; the formatted strings are derived from the
// unrounded values so live countdown displays do not compound rounding error.
type DaySummary struct {
	Date         string `json:"date"` // YYYY-MM-DD
	EmployeeName string `json:"employeeName"`

	OfficeSpanHours float64 `json:"officeSpanHours"` // first IN to last OUT (or now)
	ActualWorkHours float64 `json:"actualWorkHours"` // sum of interval durations
	BreakHours      float64 `json:"breakHours"`
	BreakExceeded   bool    `json:"breakExceeded"`

	OvertimeHours float64 `json:"overtimeHours"`
	IsOvertime    bool    `json:"isOvertime"`

	RemainingHours float64 `json:"remainingHours"` // |goal - office span|
	GoalMet        bool    `json:"goalMet"`

	IsToday          bool   `json:"isToday"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
	LeaveByTime      string `json:"leaveByTime,omitempty"` // 12-hour clock, only while working

	Intervals []WorkInterval `json:"intervals"`

	OfficeSpanFormatted       string `json:"officeSpanFormatted"`
	ActualWorkFormatted       string `json:"actualWorkFormatted"`
	BreakFormatted            string `json:"breakFormatted"`
	RemainingFormatted        string `json:"remainingFormatted"`
	RemainingFormattedSeconds string `json:"remainingFormattedSeconds"`
}

// AggregateStats rolls a collection of day summaries into totals and
// projections. AverageHoursPerDay is undefined (NaN) when DaysTracked is
// zero; callers own that guard and must not serialize the struct in that case.
type AggregateStats struct {
	DaysTracked int `json:"daysTracked"`

	TotalOfficeSpanHours float64 `json:"totalOfficeSpanHours"`
	ExpectedHours        float64 `json:"expectedHours"`
	ProjectedTotalHours  float64 `json:"projectedTotalHours"`

	DifferenceHours float64 `json:"differenceHours"` // |projected - expected|
	IsOvertime      bool    `json:"isOvertime"`      // projected above expected

	TotalOvertimeHours     float64 `json:"totalOvertimeHours"`
	TotalRemainingHours    float64 `json:"totalRemainingHours"`
	AdjustedRemainingHours float64 `json:"adjustedRemainingHours"`

	OvertimeDays  int `json:"overtimeDays"`
	CompletedDays int `json:"completedDays"`
	RemainingDays int `json:"remainingDays"`

	AverageHoursPerDay float64 `json:"averageHoursPerDay"`

	IsCurrentlyWorking  bool    `json:"isCurrentlyWorking"`
	TodayRemainingHours float64 `json:"todayRemainingHours"`

	TotalFormatted             string `json:"totalFormatted"`
	ExpectedFormatted          string `json:"expectedFormatted"`
	ProjectedTotalFormatted    string `json:"projectedTotalFormatted"`
	DifferenceFormatted        string `json:"differenceFormatted"`
	TotalRemainingFormatted    string `json:"totalRemainingFormatted"`
	AdjustedRemainingFormatted string `json:"adjustedRemainingFormatted"`
}
