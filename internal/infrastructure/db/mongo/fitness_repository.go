package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peakform/fitness-api/internal/core/domain"
)

const (
	workoutPlansCollection = "workout_plans"
	dietLogsCollection     = "diet_logs"
	progressLogsCollection = "progress_logs"
)

// FitnessRepository implements ports.FitnessRepository using MongoDB. Every
// query filters by user_id so ownership scoping holds at the storage layer.
type FitnessRepository struct {
	db *mongo.Database
}

func NewFitnessRepository(db *mongo.Database) *FitnessRepository {
	return &FitnessRepository{db: db}
}

func (r *FitnessRepository) CreateWorkoutPlan(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, workoutPlansCollection)
	if err != nil {
		return nil, err
	}

	stored := *plan
	stored.ID = id
	if _, err := r.db.Collection(workoutPlansCollection).InsertOne(ctx, stored); err != nil {
		return nil, fmt.Errorf("insert workout plan: %w", err)
	}
	return &stored, nil
}

func (r *FitnessRepository) ListWorkoutPlans(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	var plans []domain.WorkoutPlan
	if err := r.listForUser(ctx, workoutPlansCollection, userID, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *FitnessRepository) DeactivatePlans(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.Collection(workoutPlansCollection).UpdateMany(
		ctx,
		bson.M{"user_id": userID, "active": true},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return fmt.Errorf("deactivate plans: %w", err)
	}
	return nil
}

func (r *FitnessRepository) CreateDietLog(ctx context.Context, log *domain.DietLog) (*domain.DietLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, dietLogsCollection)
	if err != nil {
		return nil, err
	}

	stored := *log
	stored.ID = id
	if _, err := r.db.Collection(dietLogsCollection).InsertOne(ctx, stored); err != nil {
		return nil, fmt.Errorf("insert diet log: %w", err)
	}
	return &stored, nil
}

func (r *FitnessRepository) ListDietLogs(ctx context.Context, userID int64) ([]domain.DietLog, error) {
	var logs []domain.DietLog
	if err := r.listForUser(ctx, dietLogsCollection, userID, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *FitnessRepository) CreateProgressLog(ctx context.Context, log *domain.ProgressLog) (*domain.ProgressLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, progressLogsCollection)
	if err != nil {
		return nil, err
	}

	stored := *log
	stored.ID = id
	if _, err := r.db.Collection(progressLogsCollection).InsertOne(ctx, stored); err != nil {
		return nil, fmt.Errorf("insert progress log: %w", err)
	}
	return &stored, nil
}

func (r *FitnessRepository) ListProgressLogs(ctx context.Context, userID int64) ([]domain.ProgressLog, error) {
	var logs []domain.ProgressLog
	if err := r.listForUser(ctx, progressLogsCollection, userID, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *FitnessRepository) listForUser(ctx context.Context, collection string, userID int64, out any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.db.Collection(collection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return fmt.Errorf("list %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// EnsureIndexes creates the user_id indexes used by every list query.
func (r *FitnessRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, collection := range []string{workoutPlansCollection, dietLogsCollection, progressLogsCollection} {
		_, err := r.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", collection, err)
		}
	}
	return nil
}
