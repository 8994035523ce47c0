package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/peakform/fitness-api/internal/core/domain"
)

// FitnessStore keeps the three fitness collections in mutex-guarded maps.
// One id counter is shared across kinds, so ids are unique store-wide.
type FitnessStore struct {
	mu           sync.RWMutex
	workoutPlans map[int64]domain.WorkoutPlan
	dietLogs     map[int64]domain.DietLog
	progressLogs map[int64]domain.ProgressLog
	nextID       int64
}

func NewFitnessStore() *FitnessStore {
	return &FitnessStore{
		workoutPlans: make(map[int64]domain.WorkoutPlan),
		dietLogs:     make(map[int64]domain.DietLog),
		progressLogs: make(map[int64]domain.ProgressLog),
	}
}

func (s *FitnessStore) CreateWorkoutPlan(_ context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *plan
	stored.ID = s.nextID
	s.workoutPlans[stored.ID] = stored

	out := stored
	return &out, nil
}

func (s *FitnessStore) ListWorkoutPlans(_ context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var plans []domain.WorkoutPlan
	for _, plan := range s.workoutPlans {
		if plan.UserID == userID {
			plans = append(plans, plan)
		}
	}
	sortByID(plans, func(p domain.WorkoutPlan) int64 { return p.ID })
	return plans, nil
}

func (s *FitnessStore) DeactivatePlans(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, plan := range s.workoutPlans {
		if plan.UserID == userID && plan.Active {
			plan.Active = false
			s.workoutPlans[id] = plan
		}
	}
	return nil
}

func (s *FitnessStore) CreateDietLog(_ context.Context, log *domain.DietLog) (*domain.DietLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *log
	stored.ID = s.nextID
	s.dietLogs[stored.ID] = stored

	out := stored
	return &out, nil
}

func (s *FitnessStore) ListDietLogs(_ context.Context, userID int64) ([]domain.DietLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var logs []domain.DietLog
	for _, log := range s.dietLogs {
		if log.UserID == userID {
			logs = append(logs, log)
		}
	}
	sortByID(logs, func(l domain.DietLog) int64 { return l.ID })
	return logs, nil
}

func (s *FitnessStore) CreateProgressLog(_ context.Context, log *domain.ProgressLog) (*domain.ProgressLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *log
	stored.ID = s.nextID
	s.progressLogs[stored.ID] = stored

	out := stored
	return &out, nil
}

func (s *FitnessStore) ListProgressLogs(_ context.Context, userID int64) ([]domain.ProgressLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var logs []domain.ProgressLog
	for _, log := range s.progressLogs {
		if log.UserID == userID {
			logs = append(logs, log)
		}
	}
	sortByID(logs, func(l domain.ProgressLog) int64 { return l.ID })
	return logs, nil
}

// sortByID orders records by insertion id so listings are stable.
func sortByID[T any](items []T, id func(T) int64) {
	slices.SortFunc(items, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
}
