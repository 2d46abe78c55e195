package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"worklog.service/internal/core/model"
)

var (
	// punchLineRe matches the single-line record form:
	// "<name> IN|OUT DD-MM-YYYY HH:MM:SS". The name is the shortest prefix
	// before the direction token.
	punchLineRe = regexp.MustCompile(`^(.+?)\s+(IN|OUT)\s+(\d{2})-(\d{2})-(\d{4})\s+(\d{2}):(\d{2}):(\d{2})`)

	// dateTimeRe matches the third line of the multi-line record form.
	dateTimeRe = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})\s+(\d{2}):(\d{2}):(\d{2})$`)
)

// ParsePunches turns raw attendance text into punch events. Two grammars are
// supported: one record per line, or three-line records (name / direction /
// date-time). The single-line form is tried first over the whole input; the
// multi-line scan only runs when it produced nothing, so a single input never
// mixes grammars. Malformed lines are skipped, never reported; an input with
// no recognizable records yields an empty slice.
func ParsePunches(raw string) []model.PunchEvent {
	lines := splitLines(raw)

	if events := parseSingleLine(lines); len(events) > 0 {
		return events
	}
	return parseMultiLine(lines)
}

// splitLines trims every line and drops blank ones. Decorative trailer lines
// between multi-line records survive this pass and are skipped by the scans.
func splitLines(raw string) []string {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func parseSingleLine(lines []string) []model.PunchEvent {
	var events []model.PunchEvent
	for _, line := range lines {
		m := punchLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ts, ok := makeTimestamp(m[3], m[4], m[5], m[6], m[7], m[8])
		if !ok {
			continue
		}
		events = append(events, model.PunchEvent{
			EmployeeName: strings.TrimSpace(m[1]),
			Direction:    model.Direction(m[2]),
			Timestamp:    ts,
		})
	}
	return events
}

// parseMultiLine scans for non-overlapping windows of three lines: a name, an
// exact IN/OUT, and a DD-MM-YYYY HH:MM:SS stamp. The window slides forward by
// one line on failure and by three on success, so consumed lines are never
// reused by a later match.
func parseMultiLine(lines []string) []model.PunchEvent {
	var events []model.PunchEvent
	for i := 0; i+2 < len(lines); {
		dir := lines[i+1]
		if dir != string(model.DirectionIn) && dir != string(model.DirectionOut) {
			i++
			continue
		}
		m := dateTimeRe.FindStringSubmatch(lines[i+2])
		if m == nil {
			i++
			continue
		}
		ts, ok := makeTimestamp(m[1], m[2], m[3], m[4], m[5], m[6])
		if !ok {
			i++
			continue
		}
		events = append(events, model.PunchEvent{
			EmployeeName: lines[i],
			Direction:    model.Direction(dir),
			Timestamp:    ts,
		})
		i += 3
	}
	return events
}

// makeTimestamp builds a local wall-clock instant from already
// digit-validated fields. It rejects values the calendar cannot represent
// (day 31 in a 30-day month, hour 25) by checking that time.Date did not
// normalize any component away.
func makeTimestamp(day, month, year, hour, minute, second string) (time.Time, bool) {
	d := atoi(day)
	mo := atoi(month)
	y := atoi(year)
	h := atoi(hour)
	mi := atoi(minute)
	s := atoi(second)

	t := time.Date(y, time.Month(mo), d, h, mi, s, 0, time.Local)
	if t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d ||
		t.Hour() != h || t.Minute() != mi || t.Second() != s {
		return time.Time{}, false
	}
	return t, true
}

// atoi is safe here: the regexes guarantee the input is all digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
