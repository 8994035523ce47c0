package domain

import (
	"encoding/json"
	"time"
)

// WorkoutPlan is an AI-generated exercise program owned by a single user.
// Plan is kept opaque: the assistant decides its internal structure.
type WorkoutPlan struct {
	ID        int64           `json:"id" bson:"_id"`
	UserID    int64           `json:"user_id" bson:"user_id"`
	Plan      json.RawMessage `json:"plan" bson:"plan"`
	Active    bool            `json:"active" bson:"active"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}

// DietLog records the meals a user logged for one day. Append-only.
type DietLog struct {
	ID            int64           `json:"id" bson:"_id"`
	UserID        int64           `json:"user_id" bson:"user_id"`
	Date          time.Time       `json:"date" bson:"date"`
	Meals         json.RawMessage `json:"meals" bson:"meals"`
	TotalCalories int             `json:"total_calories,omitempty" bson:"total_calories,omitempty"`
}

// ProgressLog records a body measurement snapshot. Append-only.
type ProgressLog struct {
	ID           int64           `json:"id" bson:"_id"`
	UserID       int64           `json:"user_id" bson:"user_id"`
	Date         time.Time       `json:"date" bson:"date"`
	Weight       int             `json:"weight,omitempty" bson:"weight,omitempty"`
	Measurements json.RawMessage `json:"measurements,omitempty" bson:"measurements,omitempty"`
	Notes        string          `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Reminder schedules a daily WhatsApp check-in for a user.
type Reminder struct {
	ID     string `json:"id" bson:"_id"`
	UserID int64  `json:"user_id" bson:"user_id"`
	Phone  string `json:"phone" bson:"phone"`
	Hour   int    `json:"hour" bson:"hour"`
	Minute int    `json:"minute" bson:"minute"`
}
