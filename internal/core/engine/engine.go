// Package engine turns raw attendance punch text into per-day work-time
// summaries and aggregate statistics. Every function is pure: the current
// instant is an explicit parameter, sampled once per run and shared by all
// stages, so identical input and an identical now always produce identical
// output. Callers refresh live fields by simply recomputing.
package engine

import (
	"sort"
	"time"

	"worklog.service/internal/core/model"
)

// Result is the output of one full pipeline run.
type Result struct {
	Summaries []model.DaySummary   `json:"summaries"`
	Stats     model.AggregateStats `json:"stats"`
}

// Compute runs the whole pipeline: parse, group, reconstruct intervals,
// derive per-day metrics, aggregate. Summaries come back most recent date
// first, then by employee name.
func Compute(raw string, now time.Time) Result {
	events := ParsePunches(raw)
	groups := GroupPunches(events)

	summaries := make([]model.DaySummary, 0, len(groups))
	for key, group := range groups {
		summaries = append(summaries, ComputeDayMetrics(key, group, now))
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Date != summaries[j].Date {
			return summaries[i].Date > summaries[j].Date
		}
		return summaries[i].EmployeeName < summaries[j].EmployeeName
	})

	return Result{
		Summaries: summaries,
		Stats:     ComputeAggregateStats(summaries),
	}
}
