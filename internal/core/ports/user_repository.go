package ports

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Users are loaded with their full permission set.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// Fails when the email address is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate,
	// including permission grants.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no row matches.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its email address.
	// Returns an ObjectNotFoundError when no row matches.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
