package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peakform/fitness-api/internal/core/ports"
)

// FitnessHandler handles the per-user workout, diet, and progress routes.
// All of them sit behind the Session middleware; the owner id always comes
// from the resolved session, never from the payload.
type FitnessHandler struct {
	service ports.FitnessService
}

func NewFitnessHandler(service ports.FitnessService) *FitnessHandler {
	return &FitnessHandler{service: service}
}

// CreateWorkoutPlan generates a plan from the caller's profile hints.
//
// @Summary      Generate a workout plan
// @Tags         fitness
// @Accept       json
// @Produce      json
// @Success      200  {object}  domain.WorkoutPlan
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/workout-plans [post]
func (h *FitnessHandler) CreateWorkoutPlan(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	// The profile is opaque to the core; it is forwarded to the assistant
	// as-is. An empty body means "no hints".
	profile, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(profile) == 0 {
		profile = []byte("{}")
	}
	if !json.Valid(profile) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	plan, err := h.service.GenerateWorkoutPlan(c.Request().Context(), userID, profile)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// ListWorkoutPlans returns every plan owned by the caller.
//
// @Summary      List workout plans
// @Tags         fitness
// @Produce      json
// @Success      200  {array}   domain.WorkoutPlan
// @Failure      401  {object}  errorResponse
// @Router       /api/workout-plans [get]
func (h *FitnessHandler) ListWorkoutPlans(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	plans, err := h.service.ListWorkoutPlans(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// CreateDietLog appends a diet log for the caller.
//
// @Summary      Log meals
// @Tags         fitness
// @Accept       json
// @Produce      json
// @Param        body  body      dietLogRequest  true  "Meal details"
// @Success      200   {object}  domain.DietLog
// @Failure      401   {object}  errorResponse
// @Router       /api/diet-logs [post]
func (h *FitnessHandler) CreateDietLog(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req dietLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	log, err := h.service.CreateDietLog(c.Request().Context(), userID, ports.DietLogInput{
		Meals:         req.Meals,
		TotalCalories: req.TotalCalories,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, log)
}

// ListDietLogs returns every diet log owned by the caller.
//
// @Summary      List diet logs
// @Tags         fitness
// @Produce      json
// @Success      200  {array}   domain.DietLog
// @Failure      401  {object}  errorResponse
// @Router       /api/diet-logs [get]
func (h *FitnessHandler) ListDietLogs(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	logs, err := h.service.ListDietLogs(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// CreateProgressLog appends a progress snapshot for the caller.
//
// @Summary      Log progress
// @Tags         fitness
// @Accept       json
// @Produce      json
// @Param        body  body      progressLogRequest  true  "Measurement snapshot"
// @Success      200   {object}  domain.ProgressLog
// @Failure      401   {object}  errorResponse
// @Router       /api/progress-logs [post]
func (h *FitnessHandler) CreateProgressLog(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req progressLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	log, err := h.service.CreateProgressLog(c.Request().Context(), userID, ports.ProgressLogInput{
		Weight:       req.Weight,
		Measurements: req.Measurements,
		Notes:        req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, log)
}

// ListProgressLogs returns every progress log owned by the caller.
//
// @Summary      List progress logs
// @Tags         fitness
// @Produce      json
// @Success      200  {array}   domain.ProgressLog
// @Failure      401  {object}  errorResponse
// @Router       /api/progress-logs [get]
func (h *FitnessHandler) ListProgressLogs(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	logs, err := h.service.ListProgressLogs(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}
