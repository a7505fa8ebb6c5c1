package usecase

import (
	"context"

	"agroalerta/internal/domain/entity"
)

// LoginInput defines the credentials submitted at login.
type LoginInput struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginOutput returns the created session and its bearer token.
type LoginOutput struct {
	Session *entity.Session `json:"session"`
	Token   string          `json:"token"`
}

// AuthUsecase compares submitted credentials against the registered profile
// (or the demo fallback pair) and manages the single session.
type AuthUsecase interface {
	// Login verifies the credentials and creates the session.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout destroys the session, leaving the registered profile intact.
	Logout(ctx context.Context) error

	// Current returns the active session.
	Current(ctx context.Context) (*entity.Session, error)

	// UpdateConsents rewrites the session's notification channels.
	UpdateConsents(ctx context.Context, channels entity.NotificationChannels) (*entity.Session, error)
}
