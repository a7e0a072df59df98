package models

import "time"

// Stored event statuses. "overdue" is never persisted: it is derived at
// read time from a pending event whose due date has passed.
type EventStatus string

const (
	EventPending   EventStatus = "pending"
	EventCompleted EventStatus = "completed"
	EventDismissed EventStatus = "dismissed"
)

type EventPriority string

const (
	PriorityHigh   EventPriority = "high"
	PriorityMedium EventPriority = "medium"
	PriorityLow    EventPriority = "low"
)

type ComplianceEvent struct {
	ID                 int64         `json:"id"`
	BusinessID         int64         `json:"business_id"`
	EventType          string        `json:"event_type"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	DueDate            time.Time     `json:"due_date"`
	Status             EventStatus   `json:"status"`
	Priority           EventPriority `json:"priority"`
	Category           string        `json:"category"`
	IsRecurring        bool          `json:"is_recurring"`
	RecurrenceInterval *string       `json:"recurrence_interval,omitempty"`
	CompletedAt        *time.Time    `json:"completed_at,omitempty"`
	CompletedBy        *string       `json:"completed_by,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

// CalendarEntry is a compliance event plus the date-derived view fields.
// The derived fields are recomputed on every read and never stored.
type CalendarEntry struct {
	ComplianceEvent
	DaysUntilDue int  `json:"days_until_due"`
	Overdue      bool `json:"overdue"`
	DueThisWeek  bool `json:"due_this_week"`
}

type ComplianceSummary struct {
	Total       int `json:"total"`
	Completed   int `json:"completed"`
	Pending     int `json:"pending"`
	Overdue     int `json:"overdue"`
	DueThisWeek int `json:"due_this_week"`
	Score       int `json:"compliance_score"`
}
