package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/peakform/fitness-api/internal/core/domain"
	"github.com/peakform/fitness-api/internal/core/ports"
)

// FitnessService implements the per-user workout, diet, and progress use
// cases. Ownership scoping is delegated to the repository; this layer adds
// plan generation and the single-active-plan rule.
type FitnessService struct {
	repo      ports.FitnessRepository
	assistant ports.Assistant
	logger    zerolog.Logger
}

func NewFitnessService(repo ports.FitnessRepository, assistant ports.Assistant, logger zerolog.Logger) *FitnessService {
	return &FitnessService{repo: repo, assistant: assistant, logger: logger}
}

// GenerateWorkoutPlan asks the assistant for a plan and stores it as the
// user's only active plan; earlier plans are kept but deactivated.
func (s *FitnessService) GenerateWorkoutPlan(ctx context.Context, userID int64, profile json.RawMessage) (*domain.WorkoutPlan, error) {
	planJSON, err := s.assistant.GeneratePlan(ctx, profile)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("plan generation failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}

	if err := s.repo.DeactivatePlans(ctx, userID); err != nil {
		return nil, fmt.Errorf("deactivate plans: %w", err)
	}

	plan, err := s.repo.CreateWorkoutPlan(ctx, &domain.WorkoutPlan{
		UserID:    userID,
		Plan:      planJSON,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Int64("plan_id", plan.ID).Msg("workout plan generated")
	return plan, nil
}

func (s *FitnessService) ListWorkoutPlans(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	return s.repo.ListWorkoutPlans(ctx, userID)
}

func (s *FitnessService) CreateDietLog(ctx context.Context, userID int64, input ports.DietLogInput) (*domain.DietLog, error) {
	return s.repo.CreateDietLog(ctx, &domain.DietLog{
		UserID:        userID,
		Date:          time.Now().UTC(),
		Meals:         input.Meals,
		TotalCalories: input.TotalCalories,
	})
}

func (s *FitnessService) ListDietLogs(ctx context.Context, userID int64) ([]domain.DietLog, error) {
	return s.repo.ListDietLogs(ctx, userID)
}

func (s *FitnessService) CreateProgressLog(ctx context.Context, userID int64, input ports.ProgressLogInput) (*domain.ProgressLog, error) {
	return s.repo.CreateProgressLog(ctx, &domain.ProgressLog{
		UserID:       userID,
		Date:         time.Now().UTC(),
		Weight:       input.Weight,
		Measurements: input.Measurements,
		Notes:        input.Notes,
	})
}

func (s *FitnessService) ListProgressLogs(ctx context.Context, userID int64) ([]domain.ProgressLog, error) {
	return s.repo.ListProgressLogs(ctx, userID)
}
