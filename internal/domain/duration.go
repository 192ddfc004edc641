package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the display format for timeline timestamps (DD-MM-YYYY HH:MM:SS).
const TimestampLayout = "02-01-2006 15:04:05"

// ElapsedSeconds returns the whole-second difference between begin and end.
func ElapsedSeconds(begin, end time.Time) int64 {
	return int64(end.Sub(begin) / time.Second)
}

// FormatElapsed renders the time between begin and end as "<h>h <m>m <s>s".
func FormatElapsed(begin, end time.Time) string {
	total := ElapsedSeconds(begin, end)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

// DecimalHours returns the elapsed time between begin and end in fractional hours.
func DecimalHours(begin, end time.Time) float64 {
	return float64(ElapsedSeconds(begin, end)) / 3600.0
}
