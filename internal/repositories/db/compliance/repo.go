package compliancerepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"compliancedesk/internal/entities"
	"compliancedesk/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "complianceRepo/"

const eventColumns = `
			e.id AS id,
			e.business_id AS business_id,
			e.event_type AS event_type,
			e.title AS title,
			e.description AS description,
			e.due_date AS due_date,
			e.status AS status,
			e.priority AS priority,
			e.category AS category,
			e.is_recurring AS is_recurring,
			e.recurrence_interval AS recurrence_interval,
			e.completed_at AS completed_at,
			e.completed_by AS completed_by,
			e.created_at AS created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateEvent(ctx context.Context, event *models.ComplianceEvent) error {
	op := pkg + "CreateEvent"

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO compliance_events (business_id, event_type, title, description, due_date, status, priority, category, is_recurring, recurrence_interval)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		event.BusinessID, event.EventType, event.Title, event.Description, event.DueDate,
		string(event.Status), string(event.Priority), event.Category, event.IsRecurring, event.RecurrenceInterval,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) EventsByBusiness(ctx context.Context, businessID int64) ([]*models.ComplianceEvent, error) {
	op := pkg + "EventsByBusiness"

	rawEvents := make([]entities.ComplianceEvent, 0)

	err := r.db.SelectContext(ctx, &rawEvents,
		`SELECT`+eventColumns+`
		FROM compliance_events e
		WHERE e.business_id = $1
		ORDER BY e.due_date ASC`,
		businessID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events := make([]*models.ComplianceEvent, 0, len(rawEvents))

	for i := range rawEvents {
		events = append(events, eventEntityToModel(&rawEvents[i]))
	}

	return events, nil
}

func (r *repository) EventByID(ctx context.Context, id int64) (*models.ComplianceEvent, error) {
	op := pkg + "EventByID"

	rawEvent := entities.ComplianceEvent{}

	err := r.db.GetContext(ctx, &rawEvent,
		`SELECT`+eventColumns+`
		FROM compliance_events e
		WHERE e.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return eventEntityToModel(&rawEvent), nil
}

// PendingEventTypes reports which event types already have a pending event
// for the business, so repeated generation stays idempotent.
func (r *repository) PendingEventTypes(ctx context.Context, businessID int64) (map[string]bool, error) {
	op := pkg + "PendingEventTypes"

	types := make([]string, 0)

	err := r.db.SelectContext(ctx, &types,
		`SELECT DISTINCT e.event_type
		FROM compliance_events e
		WHERE e.business_id = $1 AND e.status = 'pending'`,
		businessID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pending := make(map[string]bool, len(types))

	for _, t := range types {
		pending[t] = true
	}

	return pending, nil
}

func (r *repository) SetStatus(ctx context.Context, id int64, status models.EventStatus, userID string) (*models.ComplianceEvent, error) {
	op := pkg + "SetStatus"

	rawEvent := entities.ComplianceEvent{}

	err := r.db.GetContext(ctx, &rawEvent,
		`UPDATE compliance_events e
		SET status = $2,
			completed_at = CASE WHEN $2 = 'completed' THEN now() ELSE completed_at END,
			completed_by = CASE WHEN $2 = 'completed' THEN $3 ELSE completed_by END
		WHERE e.id = $1
		RETURNING`+eventColumns,
		id, string(status), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return eventEntityToModel(&rawEvent), nil
}

func eventEntityToModel(rawEvent *entities.ComplianceEvent) *models.ComplianceEvent {
	return &models.ComplianceEvent{
		ID:                 rawEvent.ID,
		BusinessID:         rawEvent.BusinessID,
		EventType:          rawEvent.EventType,
		Title:              rawEvent.Title,
		Description:        rawEvent.Description,
		DueDate:            rawEvent.DueDate,
		Status:             models.EventStatus(rawEvent.Status),
		Priority:           models.EventPriority(rawEvent.Priority),
		Category:           rawEvent.Category,
		IsRecurring:        rawEvent.IsRecurring,
		RecurrenceInterval: rawEvent.RecurrenceInterval,
		CompletedAt:        rawEvent.CompletedAt,
		CompletedBy:        rawEvent.CompletedBy,
		CreatedAt:          rawEvent.CreatedAt,
	}
}
