package app

import (
	"compliancedesk/internal/models"
	document "compliancedesk/internal/services/document"
	"context"
	"io"
	"time"
)

type AuthService interface {
	Register(ctx context.Context, login string, password string, token string) (string, error)
	Login(ctx context.Context, login string, password string) (string, error)
	UserByToken(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type DocumentService interface {
	UploadDocument(ctx context.Context, requester *models.User, doc *models.Document, content io.Reader) (*models.Document, error)
	AddVersion(ctx context.Context, requester *models.User, docID int64, changeDescription string, content io.Reader) (*models.DocumentVersion, error)
	ListDocuments(ctx context.Context, requester *models.User, filter models.DocumentFilter) ([]*models.Document, error)
	DocumentByID(ctx context.Context, docID int64, requester *models.User) (*models.Document, error)
	Download(ctx context.Context, docID int64, requester *models.User) (*models.Document, io.ReadCloser, error)
	Versions(ctx context.Context, docID int64, requester *models.User) ([]*models.DocumentVersion, error)
	DeleteDocument(ctx context.Context, docID int64, requester *models.User) error
	ArchiveDocument(ctx context.Context, docID int64, requester *models.User) error
	ShareDocument(ctx context.Context, requester *models.User, docID int64, input document.ShareInput) (*models.DocumentShare, string, error)
	ResolveShare(ctx context.Context, token string, password string) (*models.Document, *models.DocumentShare, error)
	DownloadShared(ctx context.Context, token string, password string) (*models.Document, io.ReadCloser, error)
	VerifyIntegrity(ctx context.Context, docID int64, requester *models.User) (models.IntegrityResult, error)
	AddComment(ctx context.Context, requester *models.User, comment *models.DocumentComment) (*models.DocumentComment, error)
	Comments(ctx context.Context, requester *models.User, docID int64) ([]*models.DocumentComment, error)
}

type ComplianceService interface {
	GenerateEvents(ctx context.Context, businessID int64, state string, entityType string, formationDate time.Time) ([]*models.ComplianceEvent, error)
	Calendar(ctx context.Context, businessID int64) ([]*models.CalendarEntry, error)
	Summary(ctx context.Context, businessID int64) (models.ComplianceSummary, error)
	CompleteEvent(ctx context.Context, eventID int64, requester *models.User) (*models.ComplianceEvent, error)
	DismissEvent(ctx context.Context, eventID int64, requester *models.User) (*models.ComplianceEvent, error)
}
