package compliance

import (
	"compliancedesk/internal/models"
	errutils "compliancedesk/internal/utils/http_errors"
	parseutil "compliancedesk/internal/utils/parsepage"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

func Calendar(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawBusinessID string, cp CalendarProvider) {
	op := pkg + "Calendar"

	log = log.With(slog.String("op", op))

	businessID, err := parseutil.ParseID(rawBusinessID)
	if err != nil {
		log.Warn("invalid business id", slog.String("id", rawBusinessID))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	entries, err := cp.Calendar(ctx, businessID)
	if err != nil {
		log.Error("failed to build compliance calendar", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"calendar": entries,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Summary(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawBusinessID string, cp CalendarProvider) {
	op := pkg + "Summary"

	log = log.With(slog.String("op", op))

	businessID, err := parseutil.ParseID(rawBusinessID)
	if err != nil {
		log.Warn("invalid business id", slog.String("id", rawBusinessID))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	summary, err := cp.Summary(ctx, businessID)
	if err != nil {
		log.Error("failed to build compliance summary", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"summary": summary,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
