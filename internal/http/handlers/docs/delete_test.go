package docs

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"compliancedesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	mockDD := new(mockDeleter)

	user := testRequester()

	mockDD.On("DeleteDocument", mock.Anything, int64(5), user).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/docs/5", nil)
	req = withRequester(req, user)

	Delete(req.Context(), slog.Default(), w, req, "5", mockDD)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]map[string]bool

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["response"]["5"])

	mockDD.AssertExpectations(t)
}

func TestDelete_Fail_NotFound(t *testing.T) {
	t.Parallel()

	mockDD := new(mockDeleter)

	user := testRequester()

	mockDD.On("DeleteDocument", mock.Anything, int64(5), user).Return(models.ErrDocumentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/docs/5", nil)
	req = withRequester(req, user)

	Delete(req.Context(), slog.Default(), w, req, "5", mockDD)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockDD.AssertExpectations(t)
}

func TestDelete_Fail_InvalidID(t *testing.T) {
	t.Parallel()

	mockDD := new(mockDeleter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/docs/zero", nil)
	req = withRequester(req, testRequester())

	Delete(req.Context(), slog.Default(), w, req, "zero", mockDD)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockDD.AssertNotCalled(t, "DeleteDocument")
}

func TestArchive_Success(t *testing.T) {
	t.Parallel()

	mockDD := new(mockDeleter)

	user := testRequester()

	mockDD.On("ArchiveDocument", mock.Anything, int64(8), user).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/docs/8/archive", nil)
	req = withRequester(req, user)

	Archive(req.Context(), slog.Default(), w, req, "8", mockDD)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]map[string]bool

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["response"]["8"])

	mockDD.AssertExpectations(t)
	mockDD.AssertNotCalled(t, "DeleteDocument")
}
