package ports

import (
	"context"

	"travelorders/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// notification outbox. Pending rows are written in the same transaction
// as the status change that produced them and picked up later by the
// relay job.
type NotificationRepository interface {
	// Add persists a new pending notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification,
	// in practice the dispatched flag set by the relay.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// GetPending retrieves up to limit notifications that have not been
	// dispatched yet, oldest first.
	GetPending(ctx context.Context, limit int) ([]*notification.Notification, error)
}
