package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username      string `json:"username,omitempty"`
	Email         string `json:"email"    validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	Weight        int    `json:"weight,omitempty"`
	Height        int    `json:"height,omitempty"`
	FitnessGoal   string `json:"fitness_goal,omitempty"`
	ActivityLevel string `json:"activity_level,omitempty"`
}

// loginRequest deliberately carries no validate tags: a missing identifier
// or password must surface as the same 401 as wrong credentials, not a 400
// that reveals which part was absent.
type loginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}
