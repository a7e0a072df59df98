package docs

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

func AddComment(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, cs CommentService) {
	op := pkg + "AddComment"

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

	var commentRequest dto.CommentRequest

	if err := json.Unmarshal(body, &commentRequest); err != nil {
		log.Error("unmarshal body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	comment := models.DocumentComment{
		DocumentID:      docID,
		Body:            commentRequest.Body,
		IsInternal:      commentRequest.IsInternal,
		ParentCommentID: commentRequest.ParentCommentID,
	}

	created, err := cs.AddComment(ctx, requester, &comment)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.Int64("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		if errors.Is(err, models.ErrCommentNotFound) || errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid comment params", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to add comment", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"comment": created,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetComments(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, cs CommentService) {
	op := pkg + "GetComments"

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

	comments, err := cs.Comments(ctx, requester, docID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.Int64("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		log.Error("failed to list comments", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"comments": comments,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
