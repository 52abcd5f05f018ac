package router

import (
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

// OptionalToken sets "uid" when a valid bearer token is present and lets the
// request through either way. Search uses it so signed-in shoppers get their
// history recorded while anonymous browsing still works.
func OptionalToken(authClient *auth.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return next(c)
			}

			token, err := authClient.VerifyIDToken(c.Request().Context(), parts[1])
			if err != nil {
				return next(c)
			}

			c.Set("uid", token.UID)
			return next(c)
		}
	}
}
