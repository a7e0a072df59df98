package entities

import "time"

type ComplianceEvent struct {
	ID                 int64      `db:"id"`
	BusinessID         int64      `db:"business_id"`
	EventType          string     `db:"event_type"`
	Title              string     `db:"title"`
	Description        string     `db:"description"`
	DueDate            time.Time  `db:"due_date"`
	Status             string     `db:"status"`
	Priority           string     `db:"priority"`
	Category           string     `db:"category"`
	IsRecurring        bool       `db:"is_recurring"`
	RecurrenceInterval *string    `db:"recurrence_interval"`
	CompletedAt        *time.Time `db:"completed_at"`
	CompletedBy        *string    `db:"completed_by"`
	CreatedAt          time.Time  `db:"created_at"`
}
