package commands

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles reviewer decisions on travel
// orders. When the change lands the order on a status the owner must hear
// about, a notification is enqueued in the same transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory ReviewUoWFactory
	policy     services.OrderPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory ReviewUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
	}
}

// Handle processes the status update command.
// Loads the actor and the order, checks the update policy, applies the
// change, and enqueues an owner notification when the new status calls
// for one. All writes share one transaction.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !h.policy.CanUpdate(actor, aggregate) {
		return errs.NewAccessDeniedError("update order status")
	}

	notify, err := aggregate.ChangeStatus(cmd.Status())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if notify {
		pending, notifErr := notification.NewNotification(kernel.NewUUID(), aggregate)
		if notifErr != nil {
			return notifErr
		}

		if err = uow.NotificationRepository().Add(ctx, pending); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
