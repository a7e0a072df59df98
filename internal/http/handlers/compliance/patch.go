package compliance

import (
	"compliancedesk/internal/models"
	errutils "compliancedesk/internal/utils/http_errors"
	parseutil "compliancedesk/internal/utils/parsepage"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

func Complete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, eu EventUpdater) {
	op := pkg + "Complete"

	log = log.With(slog.String("op", op))

	updateStatus(ctx, log, w, r, rawID, eu.CompleteEvent)
}

func Dismiss(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, eu EventUpdater) {
	op := pkg + "Dismiss"

	log = log.With(slog.String("op", op))

	updateStatus(ctx, log, w, r, rawID, eu.DismissEvent)
}

func updateStatus(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, update func(context.Context, int64, *models.User) (*models.ComplianceEvent, error)) {
	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		errutils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	eventID, err := parseutil.ParseID(rawID)
	if err != nil {
		log.Warn("invalid event id", slog.String("id", rawID))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	event, err := update(ctx, eventID, requester)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			log.Warn("event not found", slog.Int64("event_id", eventID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrEventNotFound.Error())
			return
		}
		log.Error("failed to update event status", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"event": event,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
