package docs

import (
	"compliancedesk/internal/dto"
	"compliancedesk/internal/models"
	errutils "compliancedesk/internal/utils/http_errors"
	parseutil "compliancedesk/internal/utils/parsepage"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

func AddVersion(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, du DocumentUploader) {
	op := pkg + "AddVersion"

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

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	var meta dto.NewVersionMeta

	if metaPart := r.FormValue("meta"); metaPart != "" {
		if err := json.Unmarshal([]byte(metaPart), &meta); err != nil {
			log.Error("failed to unmarshal meta", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, "invalid meta json")
			return
		}
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		log.Warn("missing file part", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	version, err := du.AddVersion(ctx, requester, docID, meta.ChangeDescription, file)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.Int64("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		log.Error("failed to add document version", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"version": versionToResponse(version),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetVersions(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, dp DocumentProvider) {
	op := pkg + "GetVersions"

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

	versions, err := dp.Versions(ctx, docID, requester)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.Int64("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		log.Error("failed to list document versions", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	dtoVersions := make([]dto.VersionResponse, 0, len(versions))

	for _, version := range versions {
		dtoVersions = append(dtoVersions, versionToResponse(version))
	}

	response := map[string]any{
		"data": map[string]any{
			"versions": dtoVersions,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func versionToResponse(version *models.DocumentVersion) dto.VersionResponse {
	return dto.VersionResponse{
		VersionNumber:     version.VersionNumber,
		FileName:          version.FileName,
		FileSize:          version.FileSize,
		ChangeDescription: version.ChangeDescription,
		IsLatest:          version.IsLatest,
		CreatedBy:         version.CreatedBy,
		CreatedAt:         version.CreatedAt,
	}
}
