package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "sparestock/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_AppErrorStatusAndCode(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"secret key failure is forbidden", domainerrors.ErrInvalidSecretKey, http.StatusForbidden, "INVALID_SECRET_KEY"},
		{"bad credentials", domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"stock exhausted", domainerrors.ErrStockUnavailable, http.StatusBadRequest, "STOCK_UNAVAILABLE"},
		{"double cancel", domainerrors.ErrOrderAlreadyCancelled, http.StatusConflict, "ORDER_ALREADY_CANCELLED"},
		{"wrapped errors unwrap to the AppError", errors.Wrap(domainerrors.ErrOrderNotFound, "cancel failed"), http.StatusNotFound, "ORDER_NOT_FOUND"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newErrorTestContext()

			m.HandleHTTPError(tc.err, c)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantCode)
		})
	}
}

func TestErrorMiddleware_UnknownErrorHidesDetail(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
