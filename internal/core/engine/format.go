package engine

import (
	"fmt"
	"math"
	"time"
)

// FormatHoursMinutes renders decimal hours as "Xh Ym", collapsing zero parts
// ("45m", "8h").
func FormatHoursMinutes(decimalHours float64) string {
	totalMinutes := int(math.Round(decimalHours * 60))
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}

// FormatHoursMinutesSeconds renders decimal hours as "Xh Ym Zs" for the live
// countdown. Seconds truncate rather than round so the display never jumps
// ahead of the clock.
func FormatHoursMinutesSeconds(decimalHours float64) string {
	totalSeconds := int(math.Floor(decimalHours * 3600))
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	switch {
	case hours == 0 && minutes == 0:
		return fmt.Sprintf("%ds", seconds)
	case hours == 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
}

// clockLabel renders an interval boundary as HH:MM.
func clockLabel(t time.Time) string {
	return t.Format("15:04")
}

// clock12Label renders an instant on the 12-hour clock, e.g. "6:05 PM".
func clock12Label(t time.Time) string {
	return t.Format("3:04 PM")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
