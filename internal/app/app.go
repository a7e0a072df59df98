package app

import (
	"compliancedesk/internal/cache/redis"
	aiclient "compliancedesk/internal/clients/ai"
	"compliancedesk/internal/config"
	"compliancedesk/internal/dbs/postgres"
	"compliancedesk/internal/migrate"
	cachecompliancerepo "compliancedesk/internal/repositories/cache/compliance"
	cachedocsrepo "compliancedesk/internal/repositories/cache/docs"
	cachesessionrepo "compliancedesk/internal/repositories/cache/session"
	compliancerepo "compliancedesk/internal/repositories/db/compliance"
	documentrepo "compliancedesk/internal/repositories/db/document"
	userrepo "compliancedesk/internal/repositories/db/user"
	filerepo "compliancedesk/internal/repositories/storage/file"
	authservice "compliancedesk/internal/services/auth"
	complianceservice "compliancedesk/internal/services/compliance"
	documentservice "compliancedesk/internal/services/document"
	userservice "compliancedesk/internal/services/user"
	"context"
	"fmt"
	"log/slog"
)

type App struct {
	AuthService       AuthService
	DocumentService   DocumentService
	ComplianceService ComplianceService
}

func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     cfg.DB.Addr,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DB:       cfg.DB.DB})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	if err := migrate.Up(ctx, db.DB); err != nil {
		log.Error("failed to run migrations", "err", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{Addr: cfg.Cache.Addr, Password: cfg.Cache.Password, DB: cfg.Cache.DB})
	if err != nil {
		log.Error("failed connect to cache", "err", err)
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	userRepo := userrepo.NewRepository(db)

	sessionCacheRepo := cachesessionrepo.New(cache, cfg.Cache.SessionTTL)

	documentCacheRepo := cachedocsrepo.New(cache, cfg.Cache.DocumentsTTL)

	complianceCacheRepo := cachecompliancerepo.New(cache, cfg.Cache.ComplianceTTL)

	userService := userservice.New(log, userRepo, userRepo)

	authService := authservice.New(log, userService, userService, sessionCacheRepo, cfg.AdminToken)

	docRepo := documentrepo.NewRepository(db)

	eventRepo := compliancerepo.NewRepository(db)

	fileStorage := filerepo.NewRepository(cfg.FileStorage.Path)

	var classifier documentservice.Classifier

	if cfg.AI.Enabled {
		classifier = aiclient.New(aiclient.Config{
			BaseURL: cfg.AI.BaseURL,
			Token:   cfg.AI.Token,
			Timeout: cfg.AI.Timeout,
		})
	}

	documentService := documentservice.New(log, docRepo, documentCacheRepo, fileStorage, classifier, cfg.ShareBaseURL)

	complianceService := complianceservice.New(log, eventRepo, complianceCacheRepo)

	return &App{
		AuthService:       authService,
		DocumentService:   documentService,
		ComplianceService: complianceService,
	}, nil
}
