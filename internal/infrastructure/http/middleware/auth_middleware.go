package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/pkg/jwt"
)

// SubjectContextKey is the echo context key holding the token subject
const SubjectContextKey = "subject"

// EchoAuth returns an Echo middleware that validates the bearer JWT and sets
// "subject" into Echo context
func EchoAuth(manager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c.Request())
			if token == "" {
				return errors.ErrUnauthenticated("Missing authorization token")
			}

			claims, err := manager.ValidateAccessToken(token)
			if err != nil {
				return errors.ErrUnauthenticated("Invalid or expired token").WithDetail("reason", err.Error())
			}

			c.Set(SubjectContextKey, claims.Subject)
			return next(c)
		}
	}
}

func extractToken(r *http.Request) string {
	// Expected format: "Bearer <token>"
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}
	return ""
}
