package engine

import (
	"math"
	"time"

	"worklog.service/internal/core/model"
)

const (
	// GoalHours is the daily office-span target.
	GoalHours = 9.0
	// OvertimeThresholdHours is the actual-work threshold beyond which time
	// counts as overtime.
	OvertimeThresholdHours = 8.0
	// BreakLimitHours is the tolerated total break per day.
	BreakLimitHours = 1.0
)

// ComputeDayMetrics derives one DaySummary from a sorted day group. The
// sampled current instant must be shared by every group of the same pipeline
// run, otherwise now-dependent fields skew against each other.
//
// A trailing unmatched IN only becomes a live interval when the group's date
// is the current date; for past dates it is discarded. A group with no IN at
// all still produces a summary with zero span.
func ComputeDayMetrics(key GroupKey, events []model.PunchEvent, now time.Time) model.DaySummary {
	sessions := Reconstruct(events)
	isToday := key.Date == DateKey(now)

	intervals := make([]model.WorkInterval, 0, len(sessions.Closed)+1)
	var work float64
	for _, iv := range sessions.Closed {
		dur := iv.End.Sub(iv.Start).Hours()
		work += dur
		intervals = append(intervals, model.WorkInterval{
			Start:         clockLabel(iv.Start),
			End:           clockLabel(iv.End),
			DurationHours: round2(dur),
		})
	}

	currentlyWorking := false
	if sessions.OpenIn != nil && isToday {
		currentlyWorking = true
		if dur := now.Sub(*sessions.OpenIn).Hours(); dur > 0 {
			work += dur
			intervals = append(intervals, model.WorkInterval{
				Start:         clockLabel(*sessions.OpenIn),
				End:           model.OpenEndLabel,
				DurationHours: round2(dur),
			})
		}
	}

	var span float64
	if sessions.FirstIn != nil {
		end := *sessions.FirstIn
		switch {
		case currentlyWorking:
			end = now
		case sessions.LastOut != nil:
			end = *sessions.LastOut
		}
		span = end.Sub(*sessions.FirstIn).Hours()
	}

	brk := span - work
	remaining := GoalHours - span
	overtime := math.Max(0, work-OvertimeThresholdHours)

	leaveBy := ""
	if currentlyWorking {
		if remaining <= 0 {
			leaveBy = clock12Label(now)
		} else {
			leaveBy = clock12Label(now.Add(hoursToDuration(remaining)))
		}
	}

	return model.DaySummary{
		Date:         key.Date,
		EmployeeName: key.EmployeeName,

		OfficeSpanHours: round2(span),
		ActualWorkHours: round2(work),
		BreakHours:      round2(brk),
		BreakExceeded:   brk > BreakLimitHours,

		OvertimeHours: round2(overtime),
		IsOvertime:    overtime > 0,

		RemainingHours: round2(math.Abs(remaining)),
		GoalMet:        remaining <= 0,

		IsToday:          isToday,
		CurrentlyWorking: currentlyWorking,
		LeaveByTime:      leaveBy,

		Intervals: intervals,

		OfficeSpanFormatted:       FormatHoursMinutes(span),
		ActualWorkFormatted:       FormatHoursMinutes(work),
		BreakFormatted:            FormatHoursMinutes(brk),
		RemainingFormatted:        FormatHoursMinutes(math.Abs(remaining)),
		RemainingFormattedSeconds: FormatHoursMinutesSeconds(math.Abs(remaining)),
	}
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
