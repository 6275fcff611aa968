package commands

import (
	"context"

	"go.uber.org/zap"

	"travelorders/internal/core/ports"
)

// RelayNotificationsCommandHandler drains the notification outbox. Each
// pending notification is handed to the notifier exactly once and marked
// dispatched regardless of the delivery outcome; a transport failure is
// logged, never retried.
type RelayNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	notifier   ports.Notifier
	logger     *zap.Logger
}

// NewRelayNotificationsCommandHandler creates a handler for outbox relay passes.
func NewRelayNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	notifier ports.Notifier,
	logger *zap.Logger,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes one relay pass over the outbox.
// Returns the number of notifications dispatched. Marking dispatched and
// reading the batch share one transaction, so a crashed pass re-reads the
// same batch next time.
func (h *RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.NotificationRepository().GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, n := range pending {
		if notifyErr := h.notifier.Notify(ctx, n); notifyErr != nil {
			h.logger.Warn("notification delivery failed",
				zap.String("notification_id", n.ID().String()),
				zap.String("order_id", n.OrderID().String()),
				zap.Error(notifyErr),
			)
		}

		n.MarkDispatched()
		if err = uow.NotificationRepository().Update(ctx, n); err != nil {
			return dispatched, err
		}
		dispatched++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return dispatched, nil
}
