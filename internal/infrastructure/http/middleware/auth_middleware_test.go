package middleware

import (
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/pkg/jwt"
)

func newProtectedServer(m *jwt.Manager) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var appErr errors.AppError
		if stdErrors.As(err, &appErr) {
			_ = c.JSON(appErr.HTTPCode, map[string]string{
				"code":    appErr.Code.String(),
				"message": appErr.Message,
			})
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
	e.GET("/private", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(SubjectContextKey).(string))
	}, EchoAuth(m))
	return e
}

func TestEchoAuth(t *testing.T) {
	m := jwt.NewManager("secret", time.Hour)
	token, err := m.GenerateAccessToken("dashboard")
	require.NoError(t, err)

	e := newProtectedServer(m)

	tests := []struct {
		name    string
		header  string
		want    int
		message string
	}{
		{"missing", "", http.StatusUnauthorized, "Missing authorization token"},
		{"malformed", "Token " + token, http.StatusUnauthorized, "Missing authorization token"},
		{"invalid", "Bearer nope", http.StatusUnauthorized, "Invalid or expired token"},
		{"valid", "Bearer " + token, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "dashboard", rec.Body.String())
				return
			}
			assert.JSONEq(t, `{"code":"UNAUTHENTICATED","message":"`+tt.message+`"}`, rec.Body.String())
		})
	}
}
