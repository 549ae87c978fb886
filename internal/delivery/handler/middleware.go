package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/diazeddy/dataset-api/internal/infrastructure"
)

// subjectContextKey is where the bearer guard stores the validated email.
const subjectContextKey = "email"

// BearerAuth guards a route group with JWT validation. A missing header,
// a non-Bearer scheme and an invalid or expired token each get their own
// 403 body. On success the resolved subject email is bound to the echo
// context under "email".
func BearerAuth(tokens *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusForbidden, MessageResponse{
					Code:    http.StatusForbidden,
					Message: "Invalid authorization code.",
				})
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || scheme != "Bearer" {
				return c.JSON(http.StatusForbidden, MessageResponse{
					Code:    http.StatusForbidden,
					Message: "Invalid authentication scheme.",
				})
			}

			email, err := tokens.ValidateToken(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, MessageResponse{
					Code:    http.StatusForbidden,
					Message: "Invalid token or expired token.",
				})
			}

			c.Set(subjectContextKey, email)
			return next(c)
		}
	}
}
