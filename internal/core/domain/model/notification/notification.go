// Package notification provides the status-change notification record.
//
// A notification is written to the outbox in the same transaction as the
// status change that produced it (write first, notify second). A background
// relay later delivers it to the transport; delivery is best-effort and a
// transport failure is never surfaced to the request that triggered it.
package notification

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Notification is a pending or delivered status-change message for the
// owner of a travel order. The payload carries everything the transport
// needs; it never reaches back into the order row.
type Notification struct {
	id          kernel.UUID
	orderID     kernel.UUID
	recipientID kernel.UUID

	status      order.Status
	destination string
	period      kernel.TravelPeriod

	createdAt  kernel.Date
	dispatched bool

	isConstructed bool
}

// NewNotification creates a pending notification for the given order state.
func NewNotification(id kernel.UUID, o *order.Order) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		orderID:       o.ID(),
		recipientID:   o.OwnerID(),
		status:        o.Status(),
		destination:   o.Destination(),
		period:        o.Period(),
		createdAt:     kernel.Today(),
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	orderID kernel.UUID,
	recipientID kernel.UUID,
	status order.Status,
	destination string,
	period kernel.TravelPeriod,
	createdAt kernel.Date,
	dispatched bool,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), recipientID.Validate(),
		status.Validate(), period.Validate()); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		orderID:       orderID,
		recipientID:   recipientID,
		status:        status,
		destination:   destination,
		period:        period,
		createdAt:     createdAt,
		dispatched:    dispatched,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}

	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// OrderID returns the order whose status change this notification announces.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// RecipientID returns the order owner being notified.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Status returns the status the order landed on.
func (n *Notification) Status() order.Status {
	return n.status
}

// Destination returns the order's destination at notification time.
func (n *Notification) Destination() string {
	return n.destination
}

// Period returns the order's travel dates at notification time.
func (n *Notification) Period() kernel.TravelPeriod {
	return n.period
}

// CreatedAt returns the date the notification was enqueued.
func (n *Notification) CreatedAt() kernel.Date {
	return n.createdAt
}

// Dispatched reports whether the relay has handed the notification to the
// transport. A dispatched notification is never relayed again, regardless
// of transport outcome.
func (n *Notification) Dispatched() bool {
	return n.dispatched
}

// MarkDispatched records that the relay handed this notification to the
// transport.
func (n *Notification) MarkDispatched() {
	n.dispatched = true
}
