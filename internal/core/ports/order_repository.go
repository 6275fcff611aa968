// Package ports defines the contracts between the application core and
// infrastructure adapters. Keeping these interfaces in the core lets the
// domain drive the shape of persistence and messaging rather than the
// other way around.
package ports

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no row matches.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
