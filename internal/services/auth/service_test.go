package authservice

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"compliancedesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserAdder struct {
	mock.Mock
}

func (m *mockUserAdder) AddUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockUserProvider struct {
	mock.Mock
}

func (m *mockUserProvider) UserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserProvider) UserByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockSessionStorer struct {
	mock.Mock
}

func (m *mockSessionStorer) SaveSession(ctx context.Context, token string, userJSON string) error {
	args := m.Called(ctx, token, userJSON)
	return args.Error(0)
}

func (m *mockSessionStorer) DeleteSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockSessionStorer) GetUserByToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

const testAdminToken = "admin-token"

func newTestService(ua *mockUserAdder, up *mockUserProvider, ss *mockSessionStorer) *AuthService {
	return New(slog.Default(), ua, up, ss, testAdminToken)
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	mockUA := new(mockUserAdder)

	mockUA.On("AddUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
		return user.Login == "newuser" && !user.IsAdmin && user.ID != "" &&
			bcrypt.CompareHashAndPassword(user.PassHash, []byte("password123")) == nil
	})).Return(nil)

	service := newTestService(mockUA, new(mockUserProvider), new(mockSessionStorer))

	login, err := service.Register(context.Background(), "newuser", "password123", "")
	require.NoError(t, err)
	assert.Equal(t, "newuser", login)

	mockUA.AssertExpectations(t)
}

func TestRegister_Success_Admin(t *testing.T) {
	t.Parallel()

	mockUA := new(mockUserAdder)

	mockUA.On("AddUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
		return user.IsAdmin
	})).Return(nil)

	service := newTestService(mockUA, new(mockUserProvider), new(mockSessionStorer))

	_, err := service.Register(context.Background(), "adminuser", "password123", testAdminToken)
	require.NoError(t, err)

	mockUA.AssertExpectations(t)
}

func TestRegister_Fail_WrongAdminToken(t *testing.T) {
	t.Parallel()

	mockUA := new(mockUserAdder)

	service := newTestService(mockUA, new(mockUserProvider), new(mockSessionStorer))

	_, err := service.Register(context.Background(), "adminuser", "password123", "wrong")
	assert.ErrorIs(t, err, models.ErrForbidden)

	mockUA.AssertNotCalled(t, "AddUser")
}

func TestRegister_Fail_InvalidParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{name: "ShortLogin", login: "ab", password: "password123"},
		{name: "BadLoginChars", login: "user name", password: "password123"},
		{name: "ShortPassword", login: "newuser", password: "p1"},
		{name: "NoDigits", login: "newuser", password: "passwordonly"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockUA := new(mockUserAdder)

			service := newTestService(mockUA, new(mockUserProvider), new(mockSessionStorer))

			_, err := service.Register(context.Background(), tt.login, tt.password, "")
			assert.ErrorIs(t, err, models.ErrInvalidParams)

			mockUA.AssertNotCalled(t, "AddUser")
		})
	}
}

func TestRegister_Fail_UserExists(t *testing.T) {
	t.Parallel()

	mockUA := new(mockUserAdder)

	mockUA.On("AddUser", mock.Anything, mock.Anything).Return(models.ErrUserExists)

	service := newTestService(mockUA, new(mockUserProvider), new(mockSessionStorer))

	_, err := service.Register(context.Background(), "taken", "password123", "")
	assert.ErrorIs(t, err, models.ErrUserExists)

	mockUA.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	mockUP := new(mockUserProvider)
	mockSS := new(mockSessionStorer)

	passHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{ID: "user1", Login: "owner", PassHash: passHash}

	mockUP.On("UserByLogin", mock.Anything, "owner").Return(user, nil)
	mockSS.On("SaveSession", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(userJSON string) bool {
		var stored models.User
		return json.Unmarshal([]byte(userJSON), &stored) == nil && stored.ID == "user1"
	})).Return(nil)

	service := newTestService(new(mockUserAdder), mockUP, mockSS)

	token, err := service.Login(context.Background(), "owner", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	mockUP.AssertExpectations(t)
	mockSS.AssertExpectations(t)
}

func TestLogin_Fail_UserNotFound(t *testing.T) {
	t.Parallel()

	mockUP := new(mockUserProvider)

	mockUP.On("UserByLogin", mock.Anything, "ghost").Return(nil, models.ErrUserNotFound)

	service := newTestService(new(mockUserAdder), mockUP, new(mockSessionStorer))

	_, err := service.Login(context.Background(), "ghost", "password123")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	mockUP.AssertExpectations(t)
}

func TestLogin_Fail_WrongPassword(t *testing.T) {
	t.Parallel()

	mockUP := new(mockUserProvider)

	passHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{ID: "user1", Login: "owner", PassHash: passHash}

	mockUP.On("UserByLogin", mock.Anything, "owner").Return(user, nil)

	service := newTestService(new(mockUserAdder), mockUP, new(mockSessionStorer))

	_, err = service.Login(context.Background(), "owner", "wrongpass1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	mockUP.AssertExpectations(t)
}

func TestUserByToken_Success(t *testing.T) {
	t.Parallel()

	mockSS := new(mockSessionStorer)

	user := models.User{ID: "user1", Login: "owner"}

	userJSON, err := json.Marshal(user)
	require.NoError(t, err)

	mockSS.On("GetUserByToken", mock.Anything, "valid-token").Return(string(userJSON), nil)

	service := newTestService(new(mockUserAdder), new(mockUserProvider), mockSS)

	got, err := service.UserByToken(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.Equal(t, "user1", got.ID)
	assert.Equal(t, "owner", got.Login)

	mockSS.AssertExpectations(t)
}

func TestUserByToken_Fail_SessionNotFound(t *testing.T) {
	t.Parallel()

	mockSS := new(mockSessionStorer)

	mockSS.On("GetUserByToken", mock.Anything, "stale").Return("", models.ErrSessionNotFound)

	service := newTestService(new(mockUserAdder), new(mockUserProvider), mockSS)

	_, err := service.UserByToken(context.Background(), "stale")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	mockSS.AssertExpectations(t)
}

func TestUserByToken_Fail_CacheError(t *testing.T) {
	t.Parallel()

	mockSS := new(mockSessionStorer)

	mockSS.On("GetUserByToken", mock.Anything, "token").Return("", errors.New("connection error"))

	service := newTestService(new(mockUserAdder), new(mockUserProvider), mockSS)

	_, err := service.UserByToken(context.Background(), "token")
	assert.ErrorIs(t, err, models.ErrInternal)

	mockSS.AssertExpectations(t)
}

func TestLogout_Success(t *testing.T) {
	t.Parallel()

	mockSS := new(mockSessionStorer)

	mockSS.On("DeleteSession", mock.Anything, "token").Return(nil)

	service := newTestService(new(mockUserAdder), new(mockUserProvider), mockSS)

	assert.NoError(t, service.Logout(context.Background(), "token"))

	mockSS.AssertExpectations(t)
}

func TestLogout_Fail_SessionNotFound(t *testing.T) {
	t.Parallel()

	mockSS := new(mockSessionStorer)

	mockSS.On("DeleteSession", mock.Anything, "stale").Return(models.ErrSessionNotFound)

	service := newTestService(new(mockUserAdder), new(mockUserProvider), mockSS)

	err := service.Logout(context.Background(), "stale")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	mockSS.AssertExpectations(t)
}
