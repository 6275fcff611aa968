package services

import (
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/model/user"
)

// OrderPolicy is a domain service deciding, per action, whether a user may
// act on a given order. Every predicate is stateless: the answer depends
// only on the actor's capability set, ownership, and the order's status.
//
// Rules:
//   - view: holds view-orders OR is the order's owner
//   - update (generic status change): holds update-order AND is NOT the
//     owner; owners cannot approve or reject their own requests
//   - cancel: (is the owner OR holds delete-order); additionally, an
//     approved order may only be canceled by a delete-order holder
type OrderPolicy struct{}

// NewOrderPolicy creates a new OrderPolicy instance.
func NewOrderPolicy() OrderPolicy {
	return OrderPolicy{}
}

// CanView reports whether the actor may see the order.
func (OrderPolicy) CanView(actor *user.User, o *order.Order) bool {
	return actor.Can(user.PermissionViewOrders) || o.IsOwnedBy(actor.ID())
}

// CanUpdate reports whether the actor may change the order's status through
// the generic update path. Owners are always refused, regardless of
// permissions held.
func (OrderPolicy) CanUpdate(actor *user.User, o *order.Order) bool {
	return actor.Can(user.PermissionUpdateOrder) && !o.IsOwnedBy(actor.ID())
}

// CanCancel reports whether the actor may use the cancellation path at all.
// The order's own cancelability (not already canceled, approval gating) is
// a separate business rule checked by the workflow.
func (OrderPolicy) CanCancel(actor *user.User, o *order.Order) bool {
	return o.IsOwnedBy(actor.ID()) || actor.Can(user.PermissionDeleteOrder)
}

// CanCancelApproved reports whether the actor may cancel an order that has
// already been approved. Only delete-order holders may; an owner alone
// cannot withdraw an approved order.
func (OrderPolicy) CanCancelApproved(actor *user.User) bool {
	return actor.Can(user.PermissionDeleteOrder)
}
