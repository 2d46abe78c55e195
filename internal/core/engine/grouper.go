package engine

import (
	"sort"
	"time"

	"worklog.service/internal/core/model"
)

// GroupKey identifies one reporting unit: a calendar day of one employee.
type GroupKey struct {
	Date         string // YYYY-MM-DD
	EmployeeName string
}

// DateKey renders the calendar date of a local instant as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// GroupPunches partitions punch events by (calendar date, employee name) and
// sorts each group chronologically. The sort is stable, so events with equal
// timestamps keep their input order. No event is dropped here.
func GroupPunches(events []model.PunchEvent) map[GroupKey][]model.PunchEvent {
	groups := make(map[GroupKey][]model.PunchEvent)
	for _, e := range events {
		key := GroupKey{Date: DateKey(e.Timestamp), EmployeeName: e.EmployeeName}
		groups[key] = append(groups[key], e)
	}

	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Timestamp.Before(group[j].Timestamp)
		})
	}
	return groups
}
