// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/author-haven/internal/service"
	"github.com/MKhiriev/author-haven/internal/store"
	"github.com/MKhiriev/author-haven/internal/utils"
	"github.com/MKhiriev/author-haven/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn             func(ctx context.Context, user models.User, password string) (models.User, error)
	registerSocialFn       func(ctx context.Context, profile models.SocialProfile) (models.User, error)
	loginFn                func(ctx context.Context, email, password string) (models.User, error)
	activateFn             func(ctx context.Context, userID int64) (models.User, error)
	logoutFn               func(ctx context.Context, tokenString string) error
	requestPasswordResetFn func(ctx context.Context, email string) error
	resetPasswordFn        func(ctx context.Context, resetToken, newPassword string) error
	createTokenFn          func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn           func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerFn(ctx, user, password)
}

func (m *mockAuthService) RegisterSocial(ctx context.Context, profile models.SocialProfile) (models.User, error) {
	return m.registerSocialFn(ctx, profile)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) Activate(ctx context.Context, userID int64) (models.User, error) {
	return m.activateFn(ctx, userID)
}

func (m *mockAuthService) Logout(ctx context.Context, tokenString string) error {
	return m.logoutFn(ctx, tokenString)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.requestPasswordResetFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return m.resetPasswordFn(ctx, resetToken, newPassword)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{AuthService: auth})
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// decodeError reads the uniform failure envelope from the recorder body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, u models.User, password string) (models.User, error) {
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, "long-enough-password", password)
			u.UserID = 42
			return u, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"alice@example.com","username":"alice","password":"long-enough-password"}`))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusCreated, body.Status)
	assert.Equal(t, "alice@example.com", body.User.Email)
	assert.Contains(t, body.Message, "activation")
}

func TestSignup_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{not json"))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeError(t, rec).Message)
}

func TestSignup_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"username":"alice","password":"long-enough-password"}`},
		{name: "malformed email", body: `{"email":"not-an-email","username":"alice","password":"long-enough-password"}`},
		{name: "missing username", body: `{"email":"alice@example.com","password":"long-enough-password"}`},
		{name: "short password", body: `{"email":"alice@example.com","username":"alice","password":"short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body))
			req = injectNopLogger(req)
			rec := httptest.NewRecorder()

			h.signup(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignup_EmailTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"alice@example.com","username":"alice","password":"long-enough-password"}`))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, http.StatusConflict, decodeError(t, rec).Status)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "long-enough-password", password)
			return models.User{UserID: 42, Email: email, Username: "alice"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"long-enough-password"}`))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var body models.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, signedToken, body.Token)
	assert.Equal(t, signedToken, body.User.Token)
}

func TestLogin_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
	}{
		{name: "unknown email", loginErr: store.ErrNoUserWasFound, wantStatus: http.StatusNotFound},
		{name: "not activated", loginErr: service.ErrUserNotActivated, wantStatus: http.StatusForbidden},
		{name: "wrong password", loginErr: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _, _ string) (models.User, error) {
					return models.User{}, tt.loginErr
				},
			}

			h := newHandlerWithAuth(t, auth)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
				strings.NewReader(`{"email":"alice@example.com","password":"whatever-password"}`))
			req = injectNopLogger(req)
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, _ string) (models.User, error) {
			return models.User{UserID: 42, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"whatever-password"}`))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec).Message)
}

// ─────────────────────────────────────────────
// socialLogin
// ─────────────────────────────────────────────

func TestSocialLogin_Success(t *testing.T) {
	const signedToken = "social.jwt.token"

	auth := &mockAuthService{
		registerSocialFn: func(_ context.Context, profile models.SocialProfile) (models.User, error) {
			assert.Equal(t, "google", profile.Provider)
			assert.Equal(t, []string{"bob@gmail.com"}, profile.Emails)
			return models.User{UserID: 7, Username: profile.DisplayName, Provider: profile.Provider, Activated: true}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/social",
		strings.NewReader(`{"id":"g-123","displayName":"Bob","emails":["bob@gmail.com"],"provider":"google"}`))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.socialLogin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var body models.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "google", body.User.Provider)
}

func TestSocialLogin_MissingProvider(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/social",
		strings.NewReader(`{"id":"g-123","displayName":"Bob","emails":["bob@gmail.com"]}`))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.socialLogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	const rawToken = "raw.session.token"

	var revoked string
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, tokenString string) error {
			revoked = tokenString
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req = injectNopLogger(req)
	req = req.WithContext(context.WithValue(req.Context(), utils.TokenCtxKey, rawToken))
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, rawToken, revoked)
}

func TestLogout_NoTokenInContext(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// activate
// ─────────────────────────────────────────────

func TestActivate_Success(t *testing.T) {
	auth := &mockAuthService{
		activateFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(42), userID)
			return models.User{UserID: userID, Email: "alice@example.com", Username: "alice", Activated: true}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/activate/42", nil)
	req = injectNopLogger(req)
	req = withRouteParam(req, "id", "42")
	rec := httptest.NewRecorder()

	h.activate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "account activated", body.Message)
}

func TestActivate_NonNumericID(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/activate/not-a-number", nil)
	req = injectNopLogger(req)
	req = withRouteParam(req, "id", "not-a-number")
	rec := httptest.NewRecorder()

	h.activate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestActivate_UnknownUser(t *testing.T) {
	auth := &mockAuthService{
		activateFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/activate/99", nil)
	req = injectNopLogger(req)
	req = withRouteParam(req, "id", "99")
	rec := httptest.NewRecorder()

	h.activate(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// requestPasswordReset
// ─────────────────────────────────────────────

func TestRequestPasswordReset_Success(t *testing.T) {
	var requestedFor string
	auth := &mockAuthService{
		requestPasswordResetFn: func(_ context.Context, email string) error {
			requestedFor = email
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/reset",
		strings.NewReader(`{"email":"alice@example.com"}`))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.requestPasswordReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", requestedFor)
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		requestPasswordResetFn: func(_ context.Context, _ string) error {
			return store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/reset",
		strings.NewReader(`{"email":"nobody@example.com"}`))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.requestPasswordReset(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// updatePassword
// ─────────────────────────────────────────────

func TestUpdatePassword_Success(t *testing.T) {
	const resetToken = "reset.jwt.token"

	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, token, newPassword string) error {
			assert.Equal(t, resetToken, token)
			assert.Equal(t, "brand-new-password", newPassword)
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/update_password/"+resetToken,
		strings.NewReader(`{"password":"brand-new-password","password2":"brand-new-password"}`))
	req = injectNopLogger(req)
	req = withRouteParam(req, "token", resetToken)
	rec := httptest.NewRecorder()

	h.updatePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdatePassword_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, _, _ string) error {
			return service.ErrTokenIsExpiredOrInvalid
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/update_password/stale-token",
		strings.NewReader(`{"password":"brand-new-password","password2":"brand-new-password"}`))
	req = injectNopLogger(req)
	req = withRouteParam(req, "token", "stale-token")
	rec := httptest.NewRecorder()

	h.updatePassword(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdatePassword_ShortPassword(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/update_password/some-token",
		strings.NewReader(`{"password":"short","password2":"short"}`))
	req = injectNopLogger(req)
	req = withRouteParam(req, "token", "some-token")
	rec := httptest.NewRecorder()

	h.updatePassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePassword_ConfirmationMismatch(t *testing.T) {
	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, _, _ string) error {
			t.Fatal("ResetPassword must not be called on a confirmation mismatch")
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/update_password/some-token",
		strings.NewReader(`{"password":"newpass123","password2":"totally-different"}`))
	req = injectNopLogger(req)
	req = withRouteParam(req, "token", "some-token")
	rec := httptest.NewRecorder()

	h.updatePassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
