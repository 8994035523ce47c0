package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peakform/fitness-api/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Session middleware and
// performs a fast-fail check before any service call: presence proves the
// middleware ran on this route.
func ctxUserID(c echo.Context) (int64, error) {
	userID, ok := c.Get(middleware.UserIDKey).(int64)
	if !ok || userID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return userID, nil
}
