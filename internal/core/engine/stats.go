package engine

import (
	"math"

	"worklog.service/internal/core/model"
)

// ComputeAggregateStats rolls a list of day summaries into one stats object.
// With zero summaries every sum is zero and AverageHoursPerDay is NaN; the
// caller owns that boundary and must not serialize the result in that case.
func ComputeAggregateStats(summaries []model.DaySummary) model.AggregateStats {
	days := len(summaries)
	expected := float64(days) * GoalHours

	var total, totalOvertime, totalRemaining float64
	var overtimeDays, completedDays, remainingDays int
	var today *model.DaySummary

	for i := range summaries {
		s := &summaries[i]
		total += s.OfficeSpanHours
		totalOvertime += s.OvertimeHours

		// Day buckets split on the work axis: past the overtime threshold,
		// exactly at it, or still short of it.
		workShort := round2(math.Max(0, OvertimeThresholdHours-s.ActualWorkHours))
		switch {
		case s.IsOvertime:
			overtimeDays++
		case workShort == 0:
			completedDays++
		default:
			remainingDays++
		}

		if !s.GoalMet {
			totalRemaining += s.RemainingHours
		}
		if today == nil && s.IsToday && s.CurrentlyWorking {
			today = s
		}
	}

	// Today's live session only shifts the projection while the goal is
	// still ahead of it.
	projected := total
	adjustedRemaining := totalRemaining
	var todayRemaining float64
	if today != nil {
		todayRemaining = today.RemainingHours
		if !today.IsOvertime && !today.GoalMet && today.RemainingHours > 0 {
			projected = total + today.RemainingHours
			adjustedRemaining = totalRemaining - today.RemainingHours
		}
	}

	difference := projected - expected

	return model.AggregateStats{
		DaysTracked: days,

		TotalOfficeSpanHours: round2(total),
		ExpectedHours:        round2(expected),
		ProjectedTotalHours:  round2(projected),

		DifferenceHours: round2(math.Abs(difference)),
		IsOvertime:      difference > 0,

		TotalOvertimeHours:     round2(totalOvertime),
		TotalRemainingHours:    round2(totalRemaining),
		AdjustedRemainingHours: round2(adjustedRemaining),

		OvertimeDays:  overtimeDays,
		CompletedDays: completedDays,
		RemainingDays: remainingDays,

		AverageHoursPerDay: round2(total / float64(days)),

		IsCurrentlyWorking:  today != nil,
		TodayRemainingHours: round2(todayRemaining),

		TotalFormatted:             FormatHoursMinutes(total),
		ExpectedFormatted:          FormatHoursMinutes(expected),
		ProjectedTotalFormatted:    FormatHoursMinutes(projected),
		DifferenceFormatted:        FormatHoursMinutes(math.Abs(difference)),
		TotalRemainingFormatted:    FormatHoursMinutes(totalRemaining),
		AdjustedRemainingFormatted: FormatHoursMinutes(adjustedRemaining),
	}
}
