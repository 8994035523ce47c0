package domain

import "time"

// User models a registered account.
//
// PasswordHash stores the scrypt-derived key and salt as "hexkey.hexsalt"
// and is never serialized to clients.
type User struct {
	ID            int64          `json:"id" bson:"_id"`
	Username      string         `json:"username,omitempty" bson:"username,omitempty"`
	Email         string         `json:"email" bson:"email"`
	PasswordHash  string         `json:"-" bson:"password_hash"`
	Weight        int            `json:"weight,omitempty" bson:"weight,omitempty"`
	Height        int            `json:"height,omitempty" bson:"height,omitempty"`
	FitnessGoal   string         `json:"fitness_goal,omitempty" bson:"fitness_goal,omitempty"`
	ActivityLevel string         `json:"activity_level,omitempty" bson:"activity_level,omitempty"`
	Preferences   map[string]any `json:"preferences" bson:"preferences"`
	CreatedAt     time.Time      `json:"created_at" bson:"created_at"`
}

// Session correlates an opaque bearer token with a user for a bounded window.
// Sessions are owned exclusively by the session store; everything else
// references them by token only.
type Session struct {
	Token     string    `json:"token" bson:"token"`
	UserID    int64     `json:"user_id" bson:"user_id"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
