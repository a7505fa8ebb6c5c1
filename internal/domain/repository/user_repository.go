// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agroalerta/internal/domain/entity"
	"agroalerta/internal/errors"
)

// Domain-specific errors for user and session persistence.
var (
	// ErrProfileNotFound is returned when nobody has registered on this device.
	ErrProfileNotFound = errors.New("user profile not found")
	// ErrDemoCredentialsNotFound is returned when no fallback credential pair is stored.
	ErrDemoCredentialsNotFound = errors.New("demo credentials not found")
	// ErrSessionNotFound is returned when no session is active.
	ErrSessionNotFound = errors.New("session not found")
)

// UserProfileRepository persists the single registered profile and the demo
// fallback credential pair. The profile is the whole user directory.
type UserProfileRepository interface {
	// Find retrieves the registered profile. Returns ErrProfileNotFound when
	// nobody has completed registration.
	Find(ctx context.Context) (*entity.UserProfile, error)

	// Save overwrites the registered profile.
	Save(ctx context.Context, profile *entity.UserProfile) error

	// FindDemoCredentials retrieves the fallback credential pair.
	FindDemoCredentials(ctx context.Context) (*entity.DemoCredentials, error)

	// SaveDemoCredentials overwrites the fallback credential pair.
	SaveDemoCredentials(ctx context.Context, creds *entity.DemoCredentials) error
}

// SessionRepository persists the single active session.
type SessionRepository interface {
	// Find retrieves the active session. Returns ErrSessionNotFound when
	// nobody is logged in.
	Find(ctx context.Context) (*entity.Session, error)

	// Save overwrites the active session.
	Save(ctx context.Context, session *entity.Session) error

	// Delete ends the session. Deleting an absent session is not an error.
	Delete(ctx context.Context) error
}
