package middleware

import (
	"errors"
	"net/http"
	"strings"

	"dogtor/internal/common"
	"dogtor/internal/repositories"
	"dogtor/internal/services"

	"github.com/labstack/echo/v4"
)

// Auth validates the bearer token on protected routes and attaches the
// resolved user to the request context. Header-level failures reject the
// request before any store lookup.
func Auth(userRepo repositories.UserRepository, tokens services.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, `Missing "Authorization" header`)
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token prefix")
			}
			if tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				if errors.Is(err, services.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			// A token can outlive its user; treat that as an invalid token
			// rather than a server error.
			user, err := userRepo.GetByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.SetRequest(c.Request().WithContext(common.WithUser(c.Request().Context(), user)))
			return next(c)
		}
	}
}
