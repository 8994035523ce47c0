package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peakform/fitness-api/internal/api/middleware"
	"github.com/peakform/fitness-api/internal/core/domain"
	"github.com/peakform/fitness-api/internal/core/ports"
)

type stubFitnessService struct {
	lastUserID  int64
	lastProfile json.RawMessage
	lastDiet    ports.DietLogInput
}

func (s *stubFitnessService) GenerateWorkoutPlan(_ context.Context, userID int64, profile json.RawMessage) (*domain.WorkoutPlan, error) {
	s.lastUserID = userID
	s.lastProfile = profile
	return &domain.WorkoutPlan{ID: 1, UserID: userID, Plan: json.RawMessage(`{"days":3}`), Active: true, CreatedAt: time.Now().UTC()}, nil
}

func (s *stubFitnessService) ListWorkoutPlans(_ context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	s.lastUserID = userID
	return []domain.WorkoutPlan{}, nil
}

func (s *stubFitnessService) CreateDietLog(_ context.Context, userID int64, input ports.DietLogInput) (*domain.DietLog, error) {
	s.lastUserID = userID
	s.lastDiet = input
	return &domain.DietLog{ID: 2, UserID: userID, Meals: input.Meals, TotalCalories: input.TotalCalories}, nil
}

func (s *stubFitnessService) ListDietLogs(_ context.Context, userID int64) ([]domain.DietLog, error) {
	s.lastUserID = userID
	return []domain.DietLog{}, nil
}

func (s *stubFitnessService) CreateProgressLog(_ context.Context, userID int64, input ports.ProgressLogInput) (*domain.ProgressLog, error) {
	s.lastUserID = userID
	return &domain.ProgressLog{ID: 3, UserID: userID, Weight: input.Weight, Notes: input.Notes}, nil
}

func (s *stubFitnessService) ListProgressLogs(_ context.Context, userID int64) ([]domain.ProgressLog, error) {
	s.lastUserID = userID
	return []domain.ProgressLog{}, nil
}

func authedContext(t *testing.T, method, path, body string, userID int64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newAuthTestContext(method, path, body)
	c.Set(middleware.UserIDKey, userID)
	return c, rec
}

func TestFitnessHandler_CreateWorkoutPlan(t *testing.T) {
	svc := &stubFitnessService{}
	h := NewFitnessHandler(svc)

	c, rec := authedContext(t, http.MethodPost, "/api/workout-plans", `{"fitnessGoal":"bulk"}`, 7)
	if err := h.CreateWorkoutPlan(c); err != nil {
		t.Fatalf("CreateWorkoutPlan returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastUserID != 7 {
		t.Fatalf("user id = %d, want 7", svc.lastUserID)
	}
	if string(svc.lastProfile) != `{"fitnessGoal":"bulk"}` {
		t.Fatalf("profile = %s", svc.lastProfile)
	}
}

func TestFitnessHandler_CreateWorkoutPlan_EmptyBody(t *testing.T) {
	svc := &stubFitnessService{}
	h := NewFitnessHandler(svc)

	c, _ := authedContext(t, http.MethodPost, "/api/workout-plans", "", 7)
	if err := h.CreateWorkoutPlan(c); err != nil {
		t.Fatalf("empty body should be accepted: %v", err)
	}
	if string(svc.lastProfile) != "{}" {
		t.Fatalf("profile = %s, want {}", svc.lastProfile)
	}
}

func TestFitnessHandler_CreateWorkoutPlan_InvalidJSON(t *testing.T) {
	h := NewFitnessHandler(&stubFitnessService{})

	c, _ := authedContext(t, http.MethodPost, "/api/workout-plans", `{"broken"`, 7)
	err := h.CreateWorkoutPlan(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid JSON, got %v", err)
	}
}

func TestFitnessHandler_MissingSessionContext(t *testing.T) {
	h := NewFitnessHandler(&stubFitnessService{})

	c, _ := newAuthTestContext(http.MethodGet, "/api/workout-plans", "")
	err := h.ListWorkoutPlans(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session context, got %v", err)
	}
}

func TestFitnessHandler_CreateDietLog(t *testing.T) {
	svc := &stubFitnessService{}
	h := NewFitnessHandler(svc)

	c, rec := authedContext(t, http.MethodPost, "/api/diet-logs", `{"meals":[{"name":"eggs"}],"total_calories":350}`, 4)
	if err := h.CreateDietLog(c); err != nil {
		t.Fatalf("CreateDietLog returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastDiet.TotalCalories != 350 {
		t.Fatalf("input = %+v", svc.lastDiet)
	}
}

func TestFitnessHandler_CreateDietLog_MissingMeals(t *testing.T) {
	h := NewFitnessHandler(&stubFitnessService{})

	c, _ := authedContext(t, http.MethodPost, "/api/diet-logs", `{"total_calories":350}`, 4)
	err := h.CreateDietLog(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without meals, got %v", err)
	}
}

func TestFitnessHandler_CreateProgressLog(t *testing.T) {
	svc := &stubFitnessService{}
	h := NewFitnessHandler(svc)

	c, rec := authedContext(t, http.MethodPost, "/api/progress-logs", `{"weight":178,"notes":"steady"}`, 4)
	if err := h.CreateProgressLog(c); err != nil {
		t.Fatalf("CreateProgressLog returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastUserID != 4 {
		t.Fatalf("user id = %d, want 4", svc.lastUserID)
	}
}
