package commands

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation for both owners
// withdrawing their own requests and reviewers rejecting them. Canceling
// an approved order is reserved for delete-order holders; an owner cannot
// withdraw an order once it has been approved.
type CancelOrderCommandHandler struct {
	uowFactory ReviewUoWFactory
	policy     services.OrderPolicy
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory ReviewUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
	}
}

// Handle processes the cancellation command.
// Once approved, only a delete-order holder may cancel; an owner hitting
// that wall gets a business rule violation, the same class as canceling an
// already canceled order. Access denial is reserved for actors with no
// claim on the order at all. An owner notification is enqueued in the same
// transaction.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if !h.policy.CanCancel(actor, aggregate) {
		return errs.NewAccessDeniedError("cancel order")
	}
	if aggregate.Status() == order.Approved && !h.policy.CanCancelApproved(actor) {
		return errs.NewBusinessRuleError("approved order cannot be canceled by its owner")
	}

	notify, err := aggregate.Cancel()
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
