package handler

import "encoding/json"

type dietLogRequest struct {
	Meals         json.RawMessage `json:"meals" validate:"required"`
	TotalCalories int             `json:"total_calories,omitempty"`
}

type progressLogRequest struct {
	Weight       int             `json:"weight,omitempty"`
	Measurements json.RawMessage `json:"measurements,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Message string `json:"message"`
}

type reminderRequest struct {
	Phone string `json:"phone" validate:"required"`
	Time  string `json:"time"  validate:"required"`
}
