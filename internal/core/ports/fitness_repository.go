package ports

import (
	"context"

	"github.com/peakform/fitness-api/internal/core/domain"
)

// FitnessRepository persists the per-user fitness collections. All reads are
// scoped by owner id; a record is never visible outside its owner regardless
// of backing store. Records are append-only.
type FitnessRepository interface {
	CreateWorkoutPlan(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	ListWorkoutPlans(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error)
	// DeactivatePlans clears the active flag on every plan owned by userID.
	DeactivatePlans(ctx context.Context, userID int64) error

	CreateDietLog(ctx context.Context, log *domain.DietLog) (*domain.DietLog, error)
	ListDietLogs(ctx context.Context, userID int64) ([]domain.DietLog, error)

	CreateProgressLog(ctx context.Context, log *domain.ProgressLog) (*domain.ProgressLog, error)
	ListProgressLogs(ctx context.Context, userID int64) ([]domain.ProgressLog, error)
}
