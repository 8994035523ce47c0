package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peakform/fitness-api/internal/core/ports"
)

// ReminderHandler registers daily WhatsApp check-in reminders.
type ReminderHandler struct {
	service ports.ReminderService
}

func NewReminderHandler(service ports.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// Schedule registers a daily check-in at the given wall-clock time.
//
// @Summary      Schedule a daily check-in
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        body  body      reminderRequest  true  "Phone and HH:MM time"
// @Success      201   {object}  domain.Reminder
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/reminders [post]
func (h *ReminderHandler) Schedule(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req reminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reminder, err := h.service.Schedule(c.Request().Context(), userID, req.Phone, req.Time)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reminder)
}
