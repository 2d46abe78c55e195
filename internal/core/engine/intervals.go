package engine

import (
	"time"

	"worklog.service/internal/core/model"
)

// Interval is one closed IN/OUT pair.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Sessions is the clock-free reconstruction of one sorted day group. OpenIn
// carries the trailing unmatched IN, if any; whether it becomes a live
// interval is decided later, against an injected current instant, so this
// stage stays pure.
type Sessions struct {
	Closed  []Interval
	OpenIn  *time.Time
	FirstIn *time.Time
	LastOut *time.Time
}

// Reconstruct walks a chronologically sorted group and pairs each IN with the
// next OUT. Recovery policies for messy input:
//   - a second IN with no intervening OUT overwrites the earlier one
//   - an OUT with no open IN contributes nothing
//   - a pair with zero or inverted span is dropped
//
// Re-running on the same group always yields the same closed intervals.
func Reconstruct(events []model.PunchEvent) Sessions {
	var s Sessions
	var openIn *time.Time

	for _, e := range events {
		switch e.Direction {
		case model.DirectionIn:
			ts := e.Timestamp
			if s.FirstIn == nil {
				s.FirstIn = &ts
			}
			openIn = &ts
		case model.DirectionOut:
			if openIn == nil {
				continue
			}
			ts := e.Timestamp
			s.LastOut = &ts
			if ts.After(*openIn) {
				s.Closed = append(s.Closed, Interval{Start: *openIn, End: ts})
			}
			openIn = nil
		}
	}

	s.OpenIn = openIn
	return s
}
