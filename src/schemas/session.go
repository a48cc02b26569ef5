package schemas

import "github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Category    string `json:"category" binding:"required"`
	Subcategory string `json:"subcategory" binding:"required"`
	Username    string `json:"username"`
}

// SessionResponse represents the current session together with its
// theme-derived colors
type SessionResponse struct {
	Session        *models.UserSession `json:"session"`
	AccentColor    string              `json:"accent_color"`
	SecondaryColor string              `json:"secondary_color"`
}

// MessageResponse is a generic success acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}
