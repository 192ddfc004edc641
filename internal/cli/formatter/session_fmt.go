package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/jobclock/internal/domain"
)

// eventLine renders one timeline entry: "  DD-MM-YYYY HH:MM:SS - <label>".
func eventLine(e domain.Event) string {
	label := e.Label
	switch {
	case label == domain.LabelBegin || label == domain.LabelEnd:
		label = StyleHeader.Render(label)
	case strings.HasPrefix(label, "Commit: "):
		label = StyleYellow.Render(label)
	default:
		label = StyleGreen.Render(label)
	}
	return fmt.Sprintf("  %s - %s",
		Dim(e.At.Format(domain.TimestampLayout)), label)
}

// FormatTimeline renders the ordered event log under a "Timeline:" header.
func FormatTimeline(events []domain.Event) string {
	var b strings.Builder
	b.WriteString("Timeline:\n")
	for _, e := range events {
		b.WriteString(eventLine(e))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSummary renders the end-of-session report: timeline, total elapsed
// time, task summary, and decimal hours.
func FormatSummary(events []domain.Event, begin, end time.Time, tasks []string) string {
	var b strings.Builder
	b.WriteString(FormatTimeline(events))
	fmt.Fprintf(&b, "Total time: %s\n", StyleFg.Render(domain.FormatElapsed(begin, end)))

	if len(tasks) == 0 {
		b.WriteString(Dim("No tasks added") + "\n")
	} else {
		fmt.Fprintf(&b, "\nSummary:\n%s\n", strings.Join(tasks, ". ")+".")
	}

	fmt.Fprintf(&b, "Hours: %.2f\n", domain.DecimalHours(begin, end))
	return b.String()
}

// FormatStatus renders the running-session snapshot.
func FormatStatus(startedAt time.Time, events []domain.Event, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session started at %s\n", StyleFg.Render(startedAt.Format(domain.TimestampLayout)))

	b.WriteString("Events:\n")
	if len(events) <= 1 {
		b.WriteString("  " + Dim("No tasks added") + "\n")
	} else {
		for _, e := range events[1:] {
			b.WriteString(eventLine(e))
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "Total time: %s\n", domain.FormatElapsed(startedAt, now))
	return b.String()
}
