package server

import (
	"compliancedesk/internal/config"
	"compliancedesk/internal/http/handlers/compliance"
	"compliancedesk/internal/http/handlers/docs"
	"compliancedesk/internal/http/handlers/session"
	"compliancedesk/internal/http/handlers/shared"
	"compliancedesk/internal/http/handlers/user"
	"compliancedesk/internal/http/middleware"
	"compliancedesk/internal/models"
	utils "compliancedesk/internal/utils/http_errors"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func StartServer(
	ctx context.Context,
	cfg *config.HTTPServer,
	log *slog.Logger,
	documentService DocumentService,
	complianceService ComplianceService,
	authService AuthService,
) error {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))

	setupRoutes(r, log, authService, documentService, complianceService)

	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      r,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupRoutes(r *mux.Router, log *slog.Logger, auth AuthService, doc DocumentService, comp ComplianceService) {
	// POST user
	r.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user.Add(ctx, log, w, r, auth)
	}).Methods(http.MethodPost)

	// POST session
	r.HandleFunc("/api/auth", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session.Add(ctx, log, w, r, auth)
	}).Methods(http.MethodPost)

	// DELETE session
	r.HandleFunc("/api/auth/{token}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		token := vars["token"]
		session.Delete(ctx, log, w, r, token, auth)
	}).Methods(http.MethodDelete)

	// GET shared doc (no session)
	r.HandleFunc("/shared/{token}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		token := vars["token"]
		shared.Get(ctx, log, w, r, token, doc)
	}).Methods(http.MethodGet)

	protected := r.NewRoute().Subrouter()

	protected.Use(middleware.Auth(log, auth))

	// POST doc
	protected.HandleFunc("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docs.Upload(ctx, log, w, r, doc)
	}).Methods(http.MethodPost)

	// GET docs
	protected.HandleFunc("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docs.Get(ctx, log, w, r, doc)
	}).Methods(http.MethodGet)

	// GET doc by id
	protected.HandleFunc("/api/docs/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.GetByID(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// DELETE doc by id
	protected.HandleFunc("/api/docs/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.Delete(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodDelete)

	// GET doc content
	protected.HandleFunc("/api/docs/{id}/download", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.Download(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// POST archive
	protected.HandleFunc("/api/docs/{id}/archive", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.Archive(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodPost)

	// POST version
	protected.HandleFunc("/api/docs/{id}/versions", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.AddVersion(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodPost)

	// GET versions
	protected.HandleFunc("/api/docs/{id}/versions", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.GetVersions(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// POST share
	protected.HandleFunc("/api/docs/{id}/share", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.Share(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodPost)

	// GET integrity
	protected.HandleFunc("/api/docs/{id}/integrity", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.VerifyIntegrity(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// POST comment
	protected.HandleFunc("/api/docs/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.AddComment(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodPost)

	// GET comments
	protected.HandleFunc("/api/docs/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.GetComments(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// GET compliance calendar
	protected.HandleFunc("/api/compliance/calendar/{businessID}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		businessID := vars["businessID"]
		compliance.Calendar(ctx, log, w, r, businessID, comp)
	}).Methods(http.MethodGet)

	// GET compliance summary
	protected.HandleFunc("/api/compliance/summary/{businessID}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		businessID := vars["businessID"]
		compliance.Summary(ctx, log, w, r, businessID, comp)
	}).Methods(http.MethodGet)

	// POST compliance generate
	protected.HandleFunc("/api/compliance/generate/{businessID}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		businessID := vars["businessID"]
		compliance.Generate(ctx, log, w, r, businessID, comp)
	}).Methods(http.MethodPost)

	// PATCH compliance complete
	protected.HandleFunc("/api/compliance/complete/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		eventID := vars["id"]
		compliance.Complete(ctx, log, w, r, eventID, comp)
	}).Methods(http.MethodPatch)

	// PATCH compliance dismiss
	protected.HandleFunc("/api/compliance/dismiss/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		eventID := vars["id"]
		compliance.Dismiss(ctx, log, w, r, eventID, comp)
	}).Methods(http.MethodPatch)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})
}
