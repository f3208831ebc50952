package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ContextKeyAdminUser is the echo context key holding the authenticated
// admin username.
const ContextKeyAdminUser = "admin_user"

// RequireAdmin returns an Echo middleware that rejects requests without a
// valid Bearer session token.
func RequireAdmin(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextKeyAdminUser, claims.Username)
			return next(c)
		}
	}
}

// AdminUser returns the authenticated admin username from the context,
// or "" when the request is unauthenticated.
func AdminUser(c echo.Context) string {
	u, _ := c.Get(ContextKeyAdminUser).(string)
	return u
}
