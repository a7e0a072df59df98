package docs

import (
	"compliancedesk/internal/models"
	document "compliancedesk/internal/services/document"
	"context"
	"io"
)

const pkg = "docsHandler/"

type DocumentUploader interface {
	UploadDocument(ctx context.Context, requester *models.User, doc *models.Document, content io.Reader) (*models.Document, error)
	AddVersion(ctx context.Context, requester *models.User, docID int64, changeDescription string, content io.Reader) (*models.DocumentVersion, error)
}

type DocumentProvider interface {
	ListDocuments(ctx context.Context, requester *models.User, filter models.DocumentFilter) ([]*models.Document, error)
	DocumentByID(ctx context.Context, docID int64, requester *models.User) (*models.Document, error)
	Download(ctx context.Context, docID int64, requester *models.User) (*models.Document, io.ReadCloser, error)
	Versions(ctx context.Context, docID int64, requester *models.User) ([]*models.DocumentVersion, error)
}

type DocumentDeleter interface {
	DeleteDocument(ctx context.Context, docID int64, requester *models.User) error
	ArchiveDocument(ctx context.Context, docID int64, requester *models.User) error
}

type DocumentSharer interface {
	ShareDocument(ctx context.Context, requester *models.User, docID int64, input document.ShareInput) (*models.DocumentShare, string, error)
}

type IntegrityVerifier interface {
	VerifyIntegrity(ctx context.Context, docID int64, requester *models.User) (models.IntegrityResult, error)
}

type CommentService interface {
	AddComment(ctx context.Context, requester *models.User, comment *models.DocumentComment) (*models.DocumentComment, error)
	Comments(ctx context.Context, requester *models.User, docID int64) ([]*models.DocumentComment, error)
}
