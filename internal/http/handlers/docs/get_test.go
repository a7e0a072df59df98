package docs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"compliancedesk/internal/dto"
	"compliancedesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRequester() *models.User {
	return &models.User{ID: "user1", Login: "owner"}
}

func withRequester(req *http.Request, user *models.User) *http.Request {
	ctx := context.WithValue(req.Context(), models.UserContextKey, user)
	return req.WithContext(ctx)
}

func TestGet_Success(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	user := testRequester()

	docs := []*models.Document{
		{
			ID:           1,
			OwnerID:      user.ID,
			OriginalName: "articles.pdf",
			Mime:         "application/pdf",
			DocumentType: "formation",
			ServiceType:  "llc-formation",
			Status:       models.StatusActive,
			Version:      1,
			CreatedAt:    time.Now(),
		},
	}

	filter := models.DocumentFilter{
		ServiceType: "llc-formation",
		Limit:       10,
	}

	mockDP.On("ListDocuments", mock.Anything, user, filter).Return(docs, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs?service_type=llc-formation&limit=10", nil)
	req = withRequester(req, user)

	Get(req.Context(), slog.Default(), w, req, mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]map[string][]dto.DocumentResponse

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body["data"]["docs"], 1)
	assert.Equal(t, "articles.pdf", body["data"]["docs"][0].OriginalName)
	assert.Equal(t, "llc-formation", body["data"]["docs"][0].ServiceType)

	mockDP.AssertExpectations(t)
}

func TestGet_Fail_Unauthorized(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)

	Get(req.Context(), slog.Default(), w, req, mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	mockDP.AssertNotCalled(t, "ListDocuments")
}

func TestGet_Fail_InvalidFilter(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	user := testRequester()

	mockDP.On("ListDocuments", mock.Anything, user, mock.Anything).Return(nil, models.ErrInvalidParams)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs?status=bogus", nil)
	req = withRequester(req, user)

	Get(req.Context(), slog.Default(), w, req, mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockDP.AssertExpectations(t)
}

func TestGet_Fail_ServiceError(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	user := testRequester()

	mockDP.On("ListDocuments", mock.Anything, user, mock.Anything).Return(nil, models.ErrInternal)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
	req = withRequester(req, user)

	Get(req.Context(), slog.Default(), w, req, mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	mockDP.AssertExpectations(t)
}

func TestGetByID_Success(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	user := testRequester()

	doc := &models.Document{
		ID:           5,
		OwnerID:      user.ID,
		OriginalName: "operating-agreement.pdf",
		Mime:         "application/pdf",
		Status:       models.StatusActive,
		Version:      2,
	}

	mockDP.On("DocumentByID", mock.Anything, int64(5), user).Return(doc, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/5", nil)
	req = withRequester(req, user)

	GetByID(req.Context(), slog.Default(), w, req, "5", mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]map[string]dto.DocumentResponse

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, int64(5), body["data"]["doc"].ID)
	assert.Equal(t, 2, body["data"]["doc"].Version)

	mockDP.AssertExpectations(t)
}

func TestGetByID_Fail_InvalidID(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/abc", nil)
	req = withRequester(req, testRequester())

	GetByID(req.Context(), slog.Default(), w, req, "abc", mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockDP.AssertNotCalled(t, "DocumentByID")
}

func TestGetByID_Fail_NotFound(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	user := testRequester()

	mockDP.On("DocumentByID", mock.Anything, int64(42), user).Return(nil, models.ErrDocumentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/42", nil)
	req = withRequester(req, user)

	GetByID(req.Context(), slog.Default(), w, req, "42", mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockDP.AssertExpectations(t)
}

func TestDownload_Success(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	user := testRequester()

	doc := &models.Document{
		ID:           7,
		OwnerID:      user.ID,
		OriginalName: "ein-letter.pdf",
		Mime:         "application/pdf",
	}

	content := io.NopCloser(strings.NewReader("pdf-bytes"))

	mockDP.On("Download", mock.Anything, int64(7), user).Return(doc, content, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/7/download", nil)
	req = withRequester(req, user)

	Download(req.Context(), slog.Default(), w, req, "7", mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ein-letter.pdf"`, resp.Header.Get("Content-Disposition"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(raw))

	mockDP.AssertExpectations(t)
}

func TestDownload_Fail_NotFound(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	user := testRequester()

	mockDP.On("Download", mock.Anything, int64(7), user).Return(nil, nil, models.ErrDocumentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/7/download", nil)
	req = withRequester(req, user)

	Download(req.Context(), slog.Default(), w, req, "7", mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockDP.AssertExpectations(t)
}
