package docs

import (
	"compliancedesk/internal/dto"
	"compliancedesk/internal/models"
	document "compliancedesk/internal/services/document"
	errutils "compliancedesk/internal/utils/http_errors"
	parseutil "compliancedesk/internal/utils/parsepage"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

func Share(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, sharer DocumentSharer) {
	op := pkg + "Share"

	log = log.With(slog.String("op", op))

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

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var shareRequest dto.ShareDocumentRequest

	if err := json.Unmarshal(body, &shareRequest); err != nil {
		log.Error("unmarshal body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	input := document.ShareInput{
		UserID:     shareRequest.UserID,
		Email:      shareRequest.Email,
		Permission: models.SharePermission(shareRequest.Permission),
		ExpiresAt:  shareRequest.ExpiresAt,
		Password:   shareRequest.Password,
	}

	share, shareURL, err := sharer.ShareDocument(ctx, requester, docID, input)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.Int64("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid share params", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to share document", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"share": dto.ShareDocumentResponse{
				ID:         share.ID,
				DocumentID: share.DocumentID,
				Permission: string(share.Permission),
				ExpiresAt:  share.ExpiresAt,
				ShareURL:   shareURL,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
