package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftapp/internal/delivery/http/middleware"
	"craftapp/internal/delivery/http/response"
	"craftapp/internal/delivery/http/validator"
	domainerrors "craftapp/internal/domain/errors"
	"craftapp/internal/usecase"
)

type fakeAccountUsecase struct {
	registerOut *usecase.UserOutput
	registerErr error
	loginOut    *usecase.TokenOutput
	loginErr    error
	currentOut  *usecase.UserOutput
	currentErr  error

	forgotEmails []string
}

func (f *fakeAccountUsecase) Register(_ context.Context, _ *usecase.RegisterInput) (*usecase.UserOutput, error) {
	return f.registerOut, f.registerErr
}

func (f *fakeAccountUsecase) Activate(_ context.Context, _ *usecase.ActivateInput) error {
	return nil
}

func (f *fakeAccountUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.TokenOutput, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeAccountUsecase) CurrentUser(_ context.Context, _ string) (*usecase.UserOutput, error) {
	return f.currentOut, f.currentErr
}

func (f *fakeAccountUsecase) ForgotPassword(_ context.Context, input *usecase.ForgotPasswordInput) error {
	f.forgotEmails = append(f.forgotEmails, input.Email)

	return nil
}

func (f *fakeAccountUsecase) ResetPassword(_ context.Context, _ *usecase.ResetPasswordInput) error {
	return nil
}

func (f *fakeAccountUsecase) UpdateAccount(_ context.Context, _ string, _ *usecase.UpdateAccountInput) (*usecase.UserOutput, error) {
	return f.currentOut, f.currentErr
}

func newAccountTestContext(method, target, contentType string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAccountHandler_Register(t *testing.T) {
	uc := &fakeAccountUsecase{registerOut: &usecase.UserOutput{Email: "test@example.com"}}
	h := NewAccountHandler(uc, discardLogger())

	c, rec := newAccountTestContext(http.MethodPost, "/auth/register", echo.MIMEApplicationJSON,
		`{"email":"test@example.com","password":"Password123!"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAccountHandler(&fakeAccountUsecase{}, discardLogger())

	// Malformed email and a password below the minimum length.
	c, _ := newAccountTestContext(http.MethodPost, "/auth/register", echo.MIMEApplicationJSON,
		`{"email":"not-an-email","password":"short"}`)
	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Token(t *testing.T) {
	uc := &fakeAccountUsecase{loginOut: &usecase.TokenOutput{AccessToken: "signed-token", TokenType: "bearer"}}
	h := NewAccountHandler(uc, discardLogger())

	form := url.Values{"username": {"test@example.com"}, "password": {"Password123!"}}
	c, rec := newAccountTestContext(http.MethodPost, "/auth/token", echo.MIMEApplicationForm, form.Encode())
	require.NoError(t, h.Token(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	// The token goes back bare so standard bearer clients can consume it.
	var out usecase.TokenOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
}

func TestAccountHandler_Token_FailureSetsChallengeHeader(t *testing.T) {
	uc := &fakeAccountUsecase{loginErr: domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")}
	h := NewAccountHandler(uc, discardLogger())

	form := url.Values{"username": {"test@example.com"}, "password": {"wrong"}}
	c, rec := newAccountTestContext(http.MethodPost, "/auth/token", echo.MIMEApplicationForm, form.Encode())

	err := h.Token(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestAccountHandler_Me(t *testing.T) {
	uc := &fakeAccountUsecase{currentOut: &usecase.UserOutput{Email: "test@example.com", IsActive: true}}
	h := NewAccountHandler(uc, discardLogger())

	c, rec := newAccountTestContext(http.MethodGet, "/auth/me", "", "")
	c.Set(middleware.KeyUserEmail, "test@example.com")
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test@example.com")
}

func TestAccountHandler_Me_WithoutSubject(t *testing.T) {
	h := NewAccountHandler(&fakeAccountUsecase{}, discardLogger())

	c, rec := newAccountTestContext(http.MethodGet, "/auth/me", "", "")
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountHandler_ForgotPassword_GenericAcknowledgment(t *testing.T) {
	uc := &fakeAccountUsecase{}
	h := NewAccountHandler(uc, discardLogger())

	c, rec := newAccountTestContext(http.MethodPost, "/auth/forgot-password", echo.MIMEApplicationJSON,
		`{"email":"whoever@example.com"}`)
	require.NoError(t, h.ForgotPassword(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "If your email is registered")
	assert.Equal(t, []string{"whoever@example.com"}, uc.forgotEmails)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newAccountTestContext(http.MethodGet, "/health", "", "")
	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
