package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peakform/fitness-api/internal/core/domain"
	"github.com/peakform/fitness-api/internal/core/service"
)

const (
	// SessionCookie is the name of the HTTP-only session cookie.
	SessionCookie = "fitness_session"

	// UserIDKey and TokenKey are the echo context keys populated on success.
	UserIDKey = "user_id"
	TokenKey  = "session_token"
)

// Session resolves the session cookie and injects the owning user id into
// the request context. Missing, unknown, and expired tokens are all rejected
// with the same 401 shape before any handler runs; a failing session store
// is not a dead token and surfaces as a 500 instead.
func Session(sessions *service.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			userID, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
				}
				// Store failure, not a dead token; let the central handler
				// render it as a 500.
				return err
			}

			c.Set(UserIDKey, userID)
			c.Set(TokenKey, cookie.Value)

			return next(c)
		}
	}
}
