package events

import (
	"time"

	"github.com/hospital-platform/auth-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
)

// Event represents a domain event emitted by the auth service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Username  string      `json:"username"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	UserID         string      `json:"user_id"`
	Role           domain.Role `json:"role"`
	TokenExpiresAt time.Time   `json:"token_expires_at"`
}
