package docs

import (
	"context"
	"io"

	"compliancedesk/internal/models"
	document "compliancedesk/internal/services/document"

	"github.com/stretchr/testify/mock"
)

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) UploadDocument(ctx context.Context, requester *models.User, doc *models.Document, content io.Reader) (*models.Document, error) {
	args := m.Called(ctx, requester, doc, content)
	res, _ := args.Get(0).(*models.Document)
	return res, args.Error(1)
}

func (m *mockUploader) AddVersion(ctx context.Context, requester *models.User, docID int64, changeDescription string, content io.Reader) (*models.DocumentVersion, error) {
	args := m.Called(ctx, requester, docID, changeDescription, content)
	res, _ := args.Get(0).(*models.DocumentVersion)
	return res, args.Error(1)
}

type mockDocProvider struct {
	mock.Mock
}

func (m *mockDocProvider) ListDocuments(ctx context.Context, requester *models.User, filter models.DocumentFilter) ([]*models.Document, error) {
	args := m.Called(ctx, requester, filter)
	res, _ := args.Get(0).([]*models.Document)
	return res, args.Error(1)
}

func (m *mockDocProvider) DocumentByID(ctx context.Context, docID int64, requester *models.User) (*models.Document, error) {
	args := m.Called(ctx, docID, requester)
	res, _ := args.Get(0).(*models.Document)
	return res, args.Error(1)
}

func (m *mockDocProvider) Download(ctx context.Context, docID int64, requester *models.User) (*models.Document, io.ReadCloser, error) {
	args := m.Called(ctx, docID, requester)
	doc, _ := args.Get(0).(*models.Document)
	rc, _ := args.Get(1).(io.ReadCloser)
	return doc, rc, args.Error(2)
}

func (m *mockDocProvider) Versions(ctx context.Context, docID int64, requester *models.User) ([]*models.DocumentVersion, error) {
	args := m.Called(ctx, docID, requester)
	res, _ := args.Get(0).([]*models.DocumentVersion)
	return res, args.Error(1)
}

type mockDeleter struct {
	mock.Mock
}

func (m *mockDeleter) DeleteDocument(ctx context.Context, docID int64, requester *models.User) error {
	args := m.Called(ctx, docID, requester)
	return args.Error(0)
}

func (m *mockDeleter) ArchiveDocument(ctx context.Context, docID int64, requester *models.User) error {
	args := m.Called(ctx, docID, requester)
	return args.Error(0)
}

type mockSharer struct {
	mock.Mock
}

func (m *mockSharer) ShareDocument(ctx context.Context, requester *models.User, docID int64, input document.ShareInput) (*models.DocumentShare, string, error) {
	args := m.Called(ctx, requester, docID, input)
	share, _ := args.Get(0).(*models.DocumentShare)
	return share, args.String(1), args.Error(2)
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) VerifyIntegrity(ctx context.Context, docID int64, requester *models.User) (models.IntegrityResult, error) {
	args := m.Called(ctx, docID, requester)
	res, _ := args.Get(0).(models.IntegrityResult)
	return res, args.Error(1)
}

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) AddComment(ctx context.Context, requester *models.User, comment *models.DocumentComment) (*models.DocumentComment, error) {
	args := m.Called(ctx, requester, comment)
	res, _ := args.Get(0).(*models.DocumentComment)
	return res, args.Error(1)
}

func (m *mockCommentService) Comments(ctx context.Context, requester *models.User, docID int64) ([]*models.DocumentComment, error) {
	args := m.Called(ctx, requester, docID)
	res, _ := args.Get(0).([]*models.DocumentComment)
	return res, args.Error(1)
}
