package complianceservice

import (
	"math"
	"time"

	"compliancedesk/internal/models"
)

// The view fields below are pure functions of stored events plus the
// current date. They are recomputed on every read and never persisted, so
// the dashboard cannot drift from the calendar without a background job.

const dueSoonWindowDays = 7

func daysUntil(due time.Time, now time.Time) int {
	dueDate := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return int(dueDate.Sub(nowDate).Hours() / 24)
}

func deriveEntry(event *models.ComplianceEvent, now time.Time) *models.CalendarEntry {
	days := daysUntil(event.DueDate, now)

	return &models.CalendarEntry{
		ComplianceEvent: *event,
		DaysUntilDue:    days,
		Overdue:         event.Status == models.EventPending && days < 0,
		DueThisWeek:     event.Status == models.EventPending && days >= 0 && days <= dueSoonWindowDays,
	}
}

func deriveCalendar(events []*models.ComplianceEvent, now time.Time) []*models.CalendarEntry {
	entries := make([]*models.CalendarEntry, 0, len(events))

	for _, event := range events {
		entries = append(entries, deriveEntry(event, now))
	}

	return entries
}

// summarize aggregates a business's events into dashboard counters.
// Dismissed events are excluded entirely: the user has waived them, so
// they neither help nor hurt the score. An entity with no obligations
// scores a perfect 100 by convention.
func summarize(events []*models.ComplianceEvent, now time.Time) models.ComplianceSummary {
	var summary models.ComplianceSummary

	for _, event := range events {
		if event.Status == models.EventDismissed {
			continue
		}

		summary.Total++

		entry := deriveEntry(event, now)

		switch {
		case event.Status == models.EventCompleted:
			summary.Completed++
		case entry.Overdue:
			summary.Overdue++
			summary.Pending++
		default:
			summary.Pending++
		}

		if entry.DueThisWeek {
			summary.DueThisWeek++
		}
	}

	if summary.Total == 0 {
		summary.Score = 100
		return summary
	}

	summary.Score = int(math.Round(float64(summary.Completed) / float64(summary.Total) * 100))

	return summary
}

// nextAnniversary returns the first anniversary of start, stepping in
// intervalYears increments, that falls strictly after now.
func nextAnniversary(start time.Time, now time.Time, intervalYears int) time.Time {
	next := start.AddDate(intervalYears, 0, 0)

	for !next.After(now) {
		next = next.AddDate(intervalYears, 0, 0)
	}

	return next
}
