package docs

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

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, dd DocumentDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	changeStatus(ctx, log, w, r, rawID, dd.DeleteDocument)
}

func Archive(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, dd DocumentDeleter) {
	op := pkg + "Archive"

	log = log.With(slog.String("op", op))

	changeStatus(ctx, log, w, r, rawID, dd.ArchiveDocument)
}

func changeStatus(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, change func(context.Context, int64, *models.User) error) {
	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		errutils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	docID, err := parseutil.ParseID(rawID)
	if err != nil {
		log.Warn("invalid document id", slog.String("id", rawID))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	if err := change(ctx, docID, requester); err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.Int64("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		log.Error("failed to change document status", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": map[string]any{
			rawID: true,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
