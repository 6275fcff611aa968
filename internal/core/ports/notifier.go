package ports

import (
	"context"

	"travelorders/internal/core/domain/model/notification"
)

// Notifier delivers a status-change notification to the outside world.
// Delivery is best-effort: the relay marks a notification dispatched
// regardless of the outcome, so implementations should log failures
// rather than expect a retry.
type Notifier interface {
	Notify(ctx context.Context, n *notification.Notification) error
}
