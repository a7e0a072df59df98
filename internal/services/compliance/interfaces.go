package complianceservice

import (
	"context"

	"compliancedesk/internal/models"
)

type EventRepository interface {
	CreateEvent(ctx context.Context, event *models.ComplianceEvent) error
	EventsByBusiness(ctx context.Context, businessID int64) ([]*models.ComplianceEvent, error)
	EventByID(ctx context.Context, id int64) (*models.ComplianceEvent, error)
	PendingEventTypes(ctx context.Context, businessID int64) (map[string]bool, error)
	SetStatus(ctx context.Context, id int64, status models.EventStatus, userID string) (*models.ComplianceEvent, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) error
}
