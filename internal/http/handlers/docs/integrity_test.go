package docs

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"compliancedesk/internal/dto"
	"compliancedesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyIntegrity_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result models.IntegrityResult
	}{
		{name: "Valid", result: models.IntegrityValid},
		{name: "Modified", result: models.IntegrityModified},
		{name: "Inaccessible", result: models.IntegrityInaccessible},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockIV := new(mockVerifier)

			user := testRequester()

			mockIV.On("VerifyIntegrity", mock.Anything, int64(5), user).Return(tt.result, nil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/docs/5/integrity", nil)
			req = withRequester(req, user)

			VerifyIntegrity(req.Context(), slog.Default(), w, req, "5", mockIV)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var body map[string]map[string]dto.IntegrityResponse

			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			assert.Equal(t, int64(5), body["data"]["integrity"].DocumentID)
			assert.Equal(t, string(tt.result), body["data"]["integrity"].Result)

			mockIV.AssertExpectations(t)
		})
	}
}

func TestVerifyIntegrity_Fail_NotFound(t *testing.T) {
	t.Parallel()

	mockIV := new(mockVerifier)

	user := testRequester()

	mockIV.On("VerifyIntegrity", mock.Anything, int64(5), user).Return(models.IntegrityResult(""), models.ErrDocumentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/5/integrity", nil)
	req = withRequester(req, user)

	VerifyIntegrity(req.Context(), slog.Default(), w, req, "5", mockIV)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockIV.AssertExpectations(t)
}
