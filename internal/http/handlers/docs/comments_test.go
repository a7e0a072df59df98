package docs

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"compliancedesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddComment_Success(t *testing.T) {
	t.Parallel()

	mockCS := new(mockCommentService)

	user := testRequester()

	created := &models.DocumentComment{
		ID:         21,
		DocumentID: 5,
		AuthorID:   user.ID,
		Body:       "Needs a signature on page 3",
	}

	mockCS.On("AddComment", mock.Anything, user, mock.MatchedBy(func(c *models.DocumentComment) bool {
		return c.DocumentID == 5 && c.Body == "Needs a signature on page 3" && !c.IsInternal
	})).Return(created, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/docs/5/comments", strings.NewReader(`{"body":"Needs a signature on page 3"}`))
	req = withRequester(req, user)

	AddComment(req.Context(), slog.Default(), w, req, "5", mockCS)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]map[string]models.DocumentComment

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, int64(21), body["data"]["comment"].ID)
	assert.Equal(t, user.ID, body["data"]["comment"].AuthorID)

	mockCS.AssertExpectations(t)
}

func TestAddComment_Fail_WrongParent(t *testing.T) {
	t.Parallel()

	mockCS := new(mockCommentService)

	user := testRequester()

	mockCS.On("AddComment", mock.Anything, user, mock.Anything).Return(nil, models.ErrCommentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/docs/5/comments", strings.NewReader(`{"body":"reply","parent_comment_id":77}`))
	req = withRequester(req, user)

	AddComment(req.Context(), slog.Default(), w, req, "5", mockCS)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockCS.AssertExpectations(t)
}

func TestAddComment_Fail_InvalidBody(t *testing.T) {
	t.Parallel()

	mockCS := new(mockCommentService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/docs/5/comments", strings.NewReader("{oops"))
	req = withRequester(req, testRequester())

	AddComment(req.Context(), slog.Default(), w, req, "5", mockCS)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockCS.AssertNotCalled(t, "AddComment")
}

func TestGetComments_Success(t *testing.T) {
	t.Parallel()

	mockCS := new(mockCommentService)

	user := testRequester()

	comments := []*models.DocumentComment{
		{ID: 1, DocumentID: 5, AuthorID: user.ID, Body: "first"},
		{ID: 2, DocumentID: 5, AuthorID: "u2", Body: "second", ParentCommentID: ptrInt64(1)},
	}

	mockCS.On("Comments", mock.Anything, user, int64(5)).Return(comments, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/5/comments", nil)
	req = withRequester(req, user)

	GetComments(req.Context(), slog.Default(), w, req, "5", mockCS)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]map[string][]models.DocumentComment

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body["data"]["comments"], 2)
	require.NotNil(t, body["data"]["comments"][1].ParentCommentID)
	assert.Equal(t, int64(1), *body["data"]["comments"][1].ParentCommentID)

	mockCS.AssertExpectations(t)
}

func TestGetComments_Fail_NotFound(t *testing.T) {
	t.Parallel()

	mockCS := new(mockCommentService)

	user := testRequester()

	mockCS.On("Comments", mock.Anything, user, int64(5)).Return(nil, models.ErrDocumentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/5/comments", nil)
	req = withRequester(req, user)

	GetComments(req.Context(), slog.Default(), w, req, "5", mockCS)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockCS.AssertExpectations(t)
}

func ptrInt64(v int64) *int64 {
	return &v
}
