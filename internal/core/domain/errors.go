package domain

import "errors"

// Sentinel errors shared across layers. Infrastructure wraps them with
// context; the HTTP error handler maps them to status codes.
var (
	// Validation (400).
	ErrEmailRequired       = errors.New("email is required")
	ErrInvalidReminderTime = errors.New("invalid reminder time")

	// Conflicts on registration (400).
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	// Authentication (401). ErrInvalidCredentials deliberately covers both
	// unknown-identity and wrong-password so responses cannot be used to
	// enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Lookups.
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")

	// External collaborators (500).
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	ErrMessengerUnavailable = errors.New("messenger unavailable")
)
