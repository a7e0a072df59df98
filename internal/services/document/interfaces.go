package documentservice

import (
	"context"
	"io"

	"compliancedesk/internal/models"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *models.Document, tags []string) error
	AddVersion(ctx context.Context, version *models.DocumentVersion) error
	DocumentByID(ctx context.Context, id int64) (*models.Document, error)
	TouchAccess(ctx context.Context, id int64, userID string) error
	FilteredDocuments(ctx context.Context, ownerID string, filter models.DocumentFilter) ([]*models.Document, error)
	UpdateStatus(ctx context.Context, id int64, ownerID string, status models.DocumentStatus) error
	HasShareForUser(ctx context.Context, docID int64, userID string) (bool, error)
	CreateShare(ctx context.Context, share *models.DocumentShare) error
	ShareByToken(ctx context.Context, token string) (*models.DocumentShare, error)
	AddComment(ctx context.Context, comment *models.DocumentComment) error
	CommentByID(ctx context.Context, id int64) (*models.DocumentComment, error)
	Comments(ctx context.Context, docID int64, includeInternal bool) ([]*models.DocumentComment, error)
	Versions(ctx context.Context, docID int64) ([]*models.DocumentVersion, error)
}

type FileStorage interface {
	SaveFile(fileName string, reader io.Reader) (path string, hash string, size int64, err error)
	OpenFile(path string) (io.ReadCloser, error)
	DeleteFile(path string) error
	HashFile(path string) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) error
}

type Classifier interface {
	Classify(ctx context.Context, fileName string, mime string, content []byte) (*models.Classification, error)
}
