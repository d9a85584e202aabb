package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftapp/internal/delivery/http/response"
	domainerrors "craftapp/internal/domain/errors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppErrorCarriesItsOwnStatus(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Incorrect email or password", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "binding failed"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "binding failed", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorBecomes500(t *testing.T) {
	rec, body := handleError(t, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, assert.AnError.Error())
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "already written"))

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(assert.AnError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already written", rec.Body.String())
}
