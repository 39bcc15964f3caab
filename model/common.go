package model

// Common Response structure for all API calls
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Order filled"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse represents a standard JSON response with a descriptive message
type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}
