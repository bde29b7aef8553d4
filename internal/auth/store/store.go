package store

import (
	"context"
	"errors"

	"github.com/codezen-labs/codezen/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// anything document-shaped tomorrow) implement this. The auth service only
// ever talks to this boundary.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Users is the credential-store surface the auth service consumes. Every
// operation touches a single record and is atomic from the caller's
// perspective; the driver's unique index on email is what makes concurrent
// registrations with the same address safe.
type Users interface {
	// GetUserByID returns a user by id, or ErrNotFound.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by (lowercased) email, or ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user, assigning the id and creation timestamp.
	// Returns ErrAlreadyExists when the email is already registered.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateProfile merges the non-empty patch fields into the user record
	// and returns the updated user, or ErrNotFound if the id is absent.
	UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (domain.User, error)

	// UpdatePasswordHash replaces the password hash and bumps updated_at.
	// Returns ErrNotFound if the id is absent.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error
}
