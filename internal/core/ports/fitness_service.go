package ports

import (
	"context"
	"encoding/json"

	"github.com/peakform/fitness-api/internal/core/domain"
)

// DietLogInput is the DTO passed from the transport layer to FitnessService.
type DietLogInput struct {
	Meals         json.RawMessage
	TotalCalories int
}

// ProgressLogInput carries a body measurement snapshot.
type ProgressLogInput struct {
	Weight       int
	Measurements json.RawMessage
	Notes        string
}

// FitnessService exposes the per-user fitness log use cases. Callers must
// already be authenticated; userID is the resolved session owner.
type FitnessService interface {
	// GenerateWorkoutPlan asks the assistant for a plan built from the
	// caller's profile hints and stores it as the user's active plan.
	GenerateWorkoutPlan(ctx context.Context, userID int64, profile json.RawMessage) (*domain.WorkoutPlan, error)
	ListWorkoutPlans(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error)

	CreateDietLog(ctx context.Context, userID int64, input DietLogInput) (*domain.DietLog, error)
	ListDietLogs(ctx context.Context, userID int64) ([]domain.DietLog, error)

	CreateProgressLog(ctx context.Context, userID int64, input ProgressLogInput) (*domain.ProgressLog, error)
	ListProgressLogs(ctx context.Context, userID int64) ([]domain.ProgressLog, error)
}

// ReminderService schedules daily WhatsApp check-ins.
type ReminderService interface {
	// Schedule registers a daily check-in at "HH:MM" (24-hour clock) for the
	// given user and phone number.
	Schedule(ctx context.Context, userID int64, phone, checkInTime string) (*domain.Reminder, error)
}
