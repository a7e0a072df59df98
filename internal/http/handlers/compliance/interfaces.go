package compliance

import (
	"compliancedesk/internal/models"
	"context"
	"time"
)

const pkg = "complianceHandler/"

type EventGenerator interface {
	GenerateEvents(ctx context.Context, businessID int64, state string, entityType string, formationDate time.Time) ([]*models.ComplianceEvent, error)
}

type CalendarProvider interface {
	Calendar(ctx context.Context, businessID int64) ([]*models.CalendarEntry, error)
	Summary(ctx context.Context, businessID int64) (models.ComplianceSummary, error)
}

type EventUpdater interface {
	CompleteEvent(ctx context.Context, eventID int64, requester *models.User) (*models.ComplianceEvent, error)
	DismissEvent(ctx context.Context, eventID int64, requester *models.User) (*models.ComplianceEvent, error)
}
