package shared

import (
	"compliancedesk/internal/models"
	errutils "compliancedesk/internal/utils/http_errors"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const pkg = "sharedHandler/"

type ShareResolver interface {
	ResolveShare(ctx context.Context, token string, password string) (*models.Document, *models.DocumentShare, error)
	DownloadShared(ctx context.Context, token string, password string) (*models.Document, io.ReadCloser, error)
}

// Get serves a shared document without a session. The share token is
// the only credential, optionally combined with the share password.
func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, token string, resolver ShareResolver) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	password := r.URL.Query().Get("password")
	if password == "" {
		password = r.Header.Get("X-Share-Password")
	}

	if r.URL.Query().Get("download") != "" {
		doc, file, err := resolver.DownloadShared(ctx, token, password)
		if err != nil {
			writeShareError(log, w, err)
			return
		}
		defer file.Close()

		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.OriginalName))
		w.Header().Set("Content-Type", doc.Mime)
		if _, err := io.Copy(w, file); err != nil {
			log.Error("failed to write file response", slog.String("error", err.Error()))
		}
		return
	}

	doc, share, err := resolver.ResolveShare(ctx, token, password)
	if err != nil {
		writeShareError(log, w, err)
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"doc": map[string]any{
				"id":         doc.ID,
				"name":       doc.OriginalName,
				"mime":       doc.Mime,
				"file_size":  doc.FileSize,
				"version":    doc.Version,
				"created_at": doc.CreatedAt,
			},
			"permission": share.Permission,
			"expires_at": share.ExpiresAt,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func writeShareError(log *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrShareNotFound):
		log.Warn("share not found", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusNotFound, models.ErrShareNotFound.Error())
	case errors.Is(err, models.ErrShareExpired):
		log.Warn("share expired", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusGone, models.ErrShareExpired.Error())
	case errors.Is(err, models.ErrForbidden):
		log.Warn("share password rejected")
		errutils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
	default:
		log.Error("failed to resolve share", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
	}
}
