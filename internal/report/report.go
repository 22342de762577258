// Package report turns interview and start-of-work reminder events into the
// grouped text posted to the reminder channel.
package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/wis-software/huntflow-reloaded-bot/internal/domain/entity"
)

const (
	labelInHour   = "in an hour"
	labelToday    = "today"
	labelTomorrow = "tomorrow"

	dateLayout       = "02.01"
	employmentLayout = "2006-01-02"
	timeLayout       = "15:04"
)

// bucket is a named time-relative group of rendered lines.
type bucket struct {
	label string
	lines []string
}

// builder keeps the three fixed buckets up front; dated buckets are appended
// in first-seen order, so the iteration order of the final report is a
// guaranteed contract rather than map order.
type builder struct {
	buckets []*bucket
}

func newBuilder() *builder {
	return &builder{
		buckets: []*bucket{
			{label: labelInHour},
			{label: labelToday},
			{label: labelTomorrow},
		},
	}
}

func (b *builder) add(label, line string) {
	for _, bkt := range b.buckets {
		if bkt.label == label {
			bkt.lines = append(bkt.lines, line)
			return
		}
	}
	b.buckets = append(b.buckets, &bucket{label: label, lines: []string{line}})
}

func (b *builder) render() string {
	var sb strings.Builder
	for _, bkt := range b.buckets {
		if len(bkt.lines) == 0 {
			continue
		}

		header := "Interview"
		if len(bkt.lines) > 1 {
			header = "Interviews"
		}

		sb.WriteString(fmt.Sprintf("%s %s:\n", header, bkt.label))
		sb.WriteString(strings.Join(bkt.lines, "\n"))
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

// Build renders the reminder report for the given events relative to now.
// Interviews that already started are dropped; an empty or all-past batch
// yields an empty string, in which case nothing should be sent.
func Build(events []entity.Event, now time.Time) string {
	b := newBuilder()

	for _, event := range events {
		if event.Type == entity.EventFwd {
			addStarter(b, event, now)
			continue
		}
		addInterview(b, event, now)
	}

	return b.render()
}

func addInterview(b *builder, event entity.Event, now time.Time) {
	// Only strictly-past interviews are dropped; one starting right now is
	// still worth a reminder.
	if event.Start.Before(now) {
		return
	}

	start := event.Start.In(now.Location())

	var label string
	switch daysBetween(startOfDay(now), startOfDay(start)) {
	case 0:
		if start.Sub(now) <= time.Hour {
			label = labelInHour
		} else {
			label = labelToday
		}
	case 1:
		label = labelTomorrow
	default:
		label = start.Format(dateLayout)
	}

	line := fmt.Sprintf("%s - %s %s", start.Format(timeLayout), event.FirstName, event.LastName)
	if event.Type == entity.EventRescheduled {
		line += " (rescheduled)"
	}

	b.add(label, line)
}

func addStarter(b *builder, event entity.Event, now time.Time) {
	date, err := time.ParseInLocation(employmentLayout, event.EmploymentDate, now.Location())
	if err != nil {
		return
	}

	var label string
	switch daysBetween(startOfDay(now), date) {
	case 0:
		label = labelToday
	case 1:
		label = labelTomorrow
	default:
		label = date.Format(dateLayout)
	}

	b.add(label, fmt.Sprintf("%s %s starts work", event.FirstName, event.LastName))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, both at local midnight.
// Rounding absorbs DST transitions.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
