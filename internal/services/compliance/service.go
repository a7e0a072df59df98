package complianceservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"compliancedesk/internal/filings"
	"compliancedesk/internal/models"
)

const pkg = "complianceService/"

// Days a newly formed entity has to file its initial beneficial ownership
// report.
const boirWindowDays = 90

const (
	eventTypeAnnualReport   = "annual_report"
	eventTypeBiennialReport = "biennial_report"
	eventTypeBOIRInitial    = "boir_initial"
)

type ComplianceService struct {
	log       *slog.Logger
	eventRepo EventRepository
	cache     Cache
}

func New(log *slog.Logger, eventRepo EventRepository, cache Cache) *ComplianceService {
	return &ComplianceService{
		log:       log,
		eventRepo: eventRepo,
		cache:     cache,
	}
}

// GenerateEvents derives calendar entries for a business from the static
// filing-requirement table. Event types that already have a pending event
// are skipped, so repeated generation does not duplicate obligations.
func (cs *ComplianceService) GenerateEvents(ctx context.Context, businessID int64, state string, entityType string, formationDate time.Time) ([]*models.ComplianceEvent, error) {
	op := pkg + "GenerateEvents"

	log := cs.log.With(slog.String("op", op))

	log.Debug("attempting to generate events",
		slog.Int64("business_id", businessID),
		slog.String("state", state),
		slog.String("entity_type", entityType))

	if state == "" || entityType == "" || formationDate.IsZero() {
		log.Warn("missing generation parameters")
		return nil, models.ErrInvalidParams
	}

	pending, err := cs.eventRepo.PendingEventTypes(ctx, businessID)
	if err != nil {
		log.Error("failed to get pending event types", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	now := time.Now()
	candidates := make([]*models.ComplianceEvent, 0, 2)

	if req, ok := filings.FilingRequirement(state, entityType); ok && req.Required {
		candidates = append(candidates, stateFilingEvent(businessID, state, req, formationDate, now))
	}

	candidates = append(candidates, &models.ComplianceEvent{
		BusinessID:  businessID,
		EventType:   eventTypeBOIRInitial,
		Title:       "Initial BOIR Filing",
		Description: "File the initial Beneficial Ownership Information Report with FinCEN.",
		DueDate:     formationDate.AddDate(0, 0, boirWindowDays),
		Status:      models.EventPending,
		Priority:    models.PriorityHigh,
		Category:    "federal-filing",
	})

	created := make([]*models.ComplianceEvent, 0, len(candidates))

	for _, event := range candidates {
		if pending[event.EventType] {
			log.Debug("skipping already pending event type", slog.String("event_type", event.EventType))
			continue
		}

		if err := cs.eventRepo.CreateEvent(ctx, event); err != nil {
			log.Error("failed to persist event", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		created = append(created, event)
	}

	cs.invalidateCalendarCache(ctx, log, businessID)

	log.Debug("events generated successfully", slog.Int64("business_id", businessID), slog.Int("count", len(created)))

	return created, nil
}

func stateFilingEvent(businessID int64, state string, req filings.Requirement, formationDate time.Time, now time.Time) *models.ComplianceEvent {
	intervalYears := 1
	eventType := eventTypeAnnualReport
	title := fmt.Sprintf("Annual Report (%s)", state)

	frequency := req.Frequency
	if frequency == "" {
		frequency = filings.FrequencyAnnual
	}

	if frequency == filings.FrequencyBiennial {
		intervalYears = 2
		eventType = eventTypeBiennialReport
		title = fmt.Sprintf("Biennial Report (%s)", state)
	}

	interval := frequency

	return &models.ComplianceEvent{
		BusinessID:         businessID,
		EventType:          eventType,
		Title:              title,
		Description:        req.Notes,
		DueDate:            nextAnniversary(formationDate, now, intervalYears),
		Status:             models.EventPending,
		Priority:           models.PriorityHigh,
		Category:           "state-filing",
		IsRecurring:        true,
		RecurrenceInterval: &interval,
	}
}

// Calendar returns the business's events with the date-derived view
// fields. Stored events are cached; derivation always runs against the
// current date so the view never staleness-shifts across midnight.
func (cs *ComplianceService) Calendar(ctx context.Context, businessID int64) ([]*models.CalendarEntry, error) {
	events, err := cs.loadEvents(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return deriveCalendar(events, time.Now()), nil
}

func (cs *ComplianceService) Summary(ctx context.Context, businessID int64) (models.ComplianceSummary, error) {
	events, err := cs.loadEvents(ctx, businessID)
	if err != nil {
		return models.ComplianceSummary{}, err
	}

	return summarize(events, time.Now()), nil
}

// CompleteEvent marks an obligation done. This is the only path to
// "completed": nothing completes automatically.
func (cs *ComplianceService) CompleteEvent(ctx context.Context, eventID int64, requester *models.User) (*models.ComplianceEvent, error) {
	return cs.setStatus(ctx, eventID, models.EventCompleted, requester)
}

func (cs *ComplianceService) DismissEvent(ctx context.Context, eventID int64, requester *models.User) (*models.ComplianceEvent, error) {
	return cs.setStatus(ctx, eventID, models.EventDismissed, requester)
}

func (cs *ComplianceService) setStatus(ctx context.Context, eventID int64, status models.EventStatus, requester *models.User) (*models.ComplianceEvent, error) {
	op := pkg + "setStatus"

	log := cs.log.With(slog.String("op", op))

	log.Debug("attempting event status transition", slog.Int64("event_id", eventID), slog.String("status", string(status)))

	event, err := cs.eventRepo.SetStatus(ctx, eventID, status, requester.ID)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			log.Warn("event not found", slog.Int64("event_id", eventID))
			return nil, models.ErrEventNotFound
		}
		log.Error("failed to update event status", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	cs.invalidateCalendarCache(ctx, log, event.BusinessID)

	log.Debug("event status transition successful", slog.Int64("event_id", eventID), slog.String("status", string(status)))

	return event, nil
}

func (cs *ComplianceService) loadEvents(ctx context.Context, businessID int64) ([]*models.ComplianceEvent, error) {
	op := pkg + "loadEvents"

	log := cs.log.With(slog.String("op", op))

	cacheKey := calendarCacheKey(businessID)

	eventsJSON, err := cs.cache.Get(ctx, cacheKey)
	if err == nil && eventsJSON != "" {
		events, err := jsonToEvents(eventsJSON)
		if err == nil {
			return events, nil
		}
		log.Warn("failed to parse cached events", slog.String("error", err.Error()))
	}

	events, err := cs.eventRepo.EventsByBusiness(ctx, businessID)
	if err != nil {
		log.Error("failed to list events", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if eventsJSON, err := eventsToJSON(events); err != nil {
		log.Error("failed to convert events to json", slog.String("error", err.Error()))
	} else if err := cs.cache.Set(ctx, cacheKey, eventsJSON); err != nil {
		log.Error("failed to set events in cache", slog.String("error", err.Error()))
	}

	return events, nil
}

func (cs *ComplianceService) invalidateCalendarCache(ctx context.Context, log *slog.Logger, businessID int64) {
	if err := cs.cache.Del(ctx, calendarCacheKey(businessID)); err != nil {
		log.Warn("failed to invalidate calendar cache", slog.String("error", err.Error()))
	}
}

func calendarCacheKey(businessID int64) string {
	return fmt.Sprintf("compliance:%d", businessID)
}

func jsonToEvents(s string) ([]*models.ComplianceEvent, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var events []*models.ComplianceEvent

	if err := json.Unmarshal([]byte(s), &events); err != nil {
		return nil, err
	}

	return events, nil
}

func eventsToJSON(events []*models.ComplianceEvent) (string, error) {
	res, err := json.Marshal(events)
	if err != nil {
		return "", err
	}

	return string(res), nil
}
