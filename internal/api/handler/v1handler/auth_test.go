package v1handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"favsetter/internal/api/handler/v1handler"
	"favsetter/pkg/domain"
	"favsetter/pkg/serrors"
	"favsetter/pkg/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == session.DefaultCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", session.DefaultCookieName)

	return nil
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	user := &domain.User{ID: domain.UserID(uuid.New()), Email: "demo@example.com", Name: "Demo"}
	env.accounts.EXPECT().Register(gomock.Any(), "demo@example.com", "Demo", "password123").Return(user, nil)

	rec := env.do(t, http.MethodPost, "/v1/auth/register",
		`{"email":"demo@example.com","name":"Demo","password":"password123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody[v1handler.UserResponse](t, rec)
	require.Equal(t, user.ID, body.User.ID)
	require.Equal(t, "demo@example.com", body.User.Email)
	require.NotContains(t, rec.Body.String(), "password")

	c := sessionCookie(t, rec)
	require.True(t, c.HttpOnly)
	require.Equal(t, "/", c.Path)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	require.Greater(t, c.MaxAge, 0)

	userID, err := env.sessions.Verify(c.Value)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestRegister_Conflict(t *testing.T) {
	env := newTestEnv(t)
	env.accounts.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "a user with this email already exists"))

	rec := env.do(t, http.MethodPost, "/v1/auth/register",
		`{"email":"demo@example.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Empty(t, rec.Result().Cookies())
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	user := &domain.User{ID: domain.UserID(uuid.New()), Email: "demo@example.com"}
	env.accounts.EXPECT().Authenticate(gomock.Any(), "demo@example.com", "password123").Return(user, nil)

	rec := env.do(t, http.MethodPost, "/v1/auth/login", `{"email":"demo@example.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user.ID, decodeBody[v1handler.UserResponse](t, rec).User.ID)
	require.NotEmpty(t, sessionCookie(t, rec).Value)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.accounts.EXPECT().Authenticate(gomock.Any(), "demo@example.com", "wrong-password").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials"))

	rec := env.do(t, http.MethodPost, "/v1/auth/login", `{"email":"demo@example.com","password":"wrong-password"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid credentials", decodeBody[v1handler.ErrorResponse](t, rec).Message)
}

func TestLogin_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/login", `{"email":"demo@example.com"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decodeBody[v1handler.SuccessResponse](t, rec).Success)

	c := sessionCookie(t, rec)
	require.Empty(t, c.Value)
	require.Negative(t, c.MaxAge)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	userID := newUserID()
	env.accounts.EXPECT().User(gomock.Any(), *userID).
		Return(&domain.User{ID: *userID, Email: "demo@example.com", CreatedAt: time.Now()}, nil)

	rec := env.do(t, http.MethodGet, "/v1/auth/me", "", userID)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, *userID, decodeBody[v1handler.UserResponse](t, rec).User.ID)
}

func TestMe_Anonymous(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	userID := newUserID()
	env.accounts.EXPECT().ChangePassword(gomock.Any(), *userID, "password123", "new-password").Return(nil)

	rec := env.do(t, http.MethodPost, "/v1/auth/change-password",
		`{"currentPassword":"password123","newPassword":"new-password"}`, userID)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Negative(t, sessionCookie(t, rec).MaxAge)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	env := newTestEnv(t)
	userID := newUserID()
	env.accounts.EXPECT().ChangePassword(gomock.Any(), *userID, "nope", "new-password").
		Return(serrors.With(serrors.ErrBadRequest, "current password is incorrect"))

	rec := env.do(t, http.MethodPost, "/v1/auth/change-password",
		`{"currentPassword":"nope","newPassword":"new-password"}`, userID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "current password is incorrect", decodeBody[v1handler.ErrorResponse](t, rec).Message)
	require.Empty(t, rec.Result().Cookies())
}
