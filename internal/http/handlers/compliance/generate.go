package compliance

import (
	"compliancedesk/internal/dto"
	"compliancedesk/internal/models"
	errutils "compliancedesk/internal/utils/http_errors"
	parseutil "compliancedesk/internal/utils/parsepage"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

func Generate(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawBusinessID string, eg EventGenerator) {
	op := pkg + "Generate"

	log = log.With(slog.String("op", op))

	businessID, err := parseutil.ParseID(rawBusinessID)
	if err != nil {
		log.Warn("invalid business id", slog.String("id", rawBusinessID))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var generateRequest dto.GenerateEventsRequest

	if err := json.Unmarshal(body, &generateRequest); err != nil {
		log.Error("unmarshal body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	events, err := eg.GenerateEvents(ctx, businessID, generateRequest.State, generateRequest.EntityType, generateRequest.FormationDate)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid generate params", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to generate compliance events", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"events": events,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
