package docs

import (
	"compliancedesk/internal/dto"
	"compliancedesk/internal/models"
	errutils "compliancedesk/internal/utils/http_errors"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const maxUploadSize = 50 << 20

func Upload(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, du DocumentUploader) {
	op := pkg + "Upload"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		errutils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	var meta dto.UploadMeta

	if err := json.Unmarshal([]byte(r.FormValue("meta")), &meta); err != nil {
		log.Error("failed to unmarshal meta", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid meta json")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("missing file part", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	mime := meta.Mime
	if mime == "" {
		mime = header.Header.Get("Content-Type")
	}

	doc := models.Document{
		BusinessID:   meta.BusinessID,
		OriginalName: header.Filename,
		Mime:         mime,
		DocumentType: meta.DocumentType,
		ServiceType:  meta.ServiceType,
		IsPublic:     meta.IsPublic,
	}

	if meta.DocumentName != "" {
		doc.OriginalName = meta.DocumentName
	}

	if meta.Category != "" {
		doc.Category = &meta.Category
	}

	created, err := du.UploadDocument(ctx, requester, &doc, file)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid upload params", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to upload document", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"doc": docToResponse(created),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func docToResponse(doc *models.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:             doc.ID,
		OriginalName:   doc.OriginalName,
		Mime:           doc.Mime,
		DocumentType:   doc.DocumentType,
		ServiceType:    doc.ServiceType,
		Category:       doc.Category,
		FileSize:       doc.FileSize,
		FileHash:       doc.FileHash,
		AITags:         doc.AITags,
		AIConfidence:   doc.AIConfidence,
		IsPublic:       doc.IsPublic,
		Version:        doc.Version,
		WorkflowStage:  doc.WorkflowStage,
		Status:         string(doc.Status),
		DownloadCount:  doc.DownloadCount,
		LastAccessedAt: doc.LastAccessedAt,
		CreatedAt:      doc.CreatedAt,
	}
}
