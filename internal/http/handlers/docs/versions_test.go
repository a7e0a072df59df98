package docs

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"compliancedesk/internal/dto"
	"compliancedesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddVersion_Success(t *testing.T) {
	t.Parallel()

	mockDU := new(mockUploader)

	user := testRequester()

	version := &models.DocumentVersion{
		ID:                33,
		DocumentID:        5,
		VersionNumber:     2,
		FileName:          "amended.pdf",
		FileSize:          128,
		ChangeDescription: "Amended articles",
		IsLatest:          true,
		CreatedBy:         user.ID,
		CreatedAt:         time.Now(),
	}

	mockDU.On("AddVersion", mock.Anything, user, int64(5), "Amended articles", mock.Anything).Return(version, nil)

	meta := `{"change_description":"Amended articles"}`
	body, contentType := buildUploadBody(t, meta, "amended.pdf", []byte("%PDF-1.4 v2"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/docs/5/versions", body)
	req.Header.Set("Content-Type", contentType)
	req = withRequester(req, user)

	AddVersion(req.Context(), slog.Default(), w, req, "5", mockDU)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var response map[string]map[string]dto.VersionResponse

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))

	assert.Equal(t, 2, response["data"]["version"].VersionNumber)
	assert.True(t, response["data"]["version"].IsLatest)
	assert.Equal(t, "Amended articles", response["data"]["version"].ChangeDescription)

	mockDU.AssertExpectations(t)
}

func TestAddVersion_Fail_MissingFile(t *testing.T) {
	t.Parallel()

	mockDU := new(mockUploader)

	body, contentType := buildUploadBody(t, "", "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/docs/5/versions", body)
	req.Header.Set("Content-Type", contentType)
	req = withRequester(req, testRequester())

	AddVersion(req.Context(), slog.Default(), w, req, "5", mockDU)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockDU.AssertNotCalled(t, "AddVersion")
}

func TestAddVersion_Fail_NotFound(t *testing.T) {
	t.Parallel()

	mockDU := new(mockUploader)

	user := testRequester()

	mockDU.On("AddVersion", mock.Anything, user, int64(404), "", mock.Anything).Return(nil, models.ErrDocumentNotFound)

	body, contentType := buildUploadBody(t, "", "f.pdf", []byte("x"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/docs/404/versions", body)
	req.Header.Set("Content-Type", contentType)
	req = withRequester(req, user)

	AddVersion(req.Context(), slog.Default(), w, req, "404", mockDU)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockDU.AssertExpectations(t)
}

func TestGetVersions_Success(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	user := testRequester()

	versions := []*models.DocumentVersion{
		{DocumentID: 5, VersionNumber: 1, FileName: "v1.pdf", CreatedBy: user.ID},
		{DocumentID: 5, VersionNumber: 2, FileName: "v2.pdf", IsLatest: true, CreatedBy: user.ID},
	}

	mockDP.On("Versions", mock.Anything, int64(5), user).Return(versions, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/5/versions", nil)
	req = withRequester(req, user)

	GetVersions(req.Context(), slog.Default(), w, req, "5", mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var response map[string]map[string][]dto.VersionResponse

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))

	require.Len(t, response["data"]["versions"], 2)
	assert.Equal(t, 1, response["data"]["versions"][0].VersionNumber)
	assert.True(t, response["data"]["versions"][1].IsLatest)

	mockDP.AssertExpectations(t)
}

func TestGetVersions_Fail_NotFound(t *testing.T) {
	t.Parallel()

	mockDP := new(mockDocProvider)

	user := testRequester()

	mockDP.On("Versions", mock.Anything, int64(5), user).Return(nil, models.ErrDocumentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/5/versions", nil)
	req = withRequester(req, user)

	GetVersions(req.Context(), slog.Default(), w, req, "5", mockDP)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockDP.AssertExpectations(t)
}
