package middleware

import (
	"net/http"
	"strings"

	"github.com/kev-n-dev/sky-way/pkg/auth"
	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key the authenticated user id is stored
// under.
const UserIDKey = "user_id"

// RequireAuth rejects requests without a valid bearer token and puts the
// token subject into the request context.
func RequireAuth(tokens *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			userID, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c echo.Context) string {
	if id, ok := c.Get(UserIDKey).(string); ok {
		return id
	}
	return ""
}
