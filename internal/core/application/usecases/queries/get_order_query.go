// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries go straight to the database and return read models shaped for
// the API; only commands go through the aggregates.
package queries

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single travel order for an authenticated user.
// Visibility follows the view policy: the owner always sees their order,
// anyone else needs the view-orders permission.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actorID    kernel.UUID
	afterWrite bool

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order on behalf of actor.
func NewGetOrderQuery(orderID kernel.UUID, actorID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setActorID(actorID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// NewGetOrderAfterWriteQuery creates a query that skips the view policy.
// Used to build the response for an order the actor just mutated: the
// mutation's own gate already ran, and update/delete capabilities do not
// imply view-orders, so a view re-check would 403 a change that committed.
func NewGetOrderAfterWriteQuery(orderID kernel.UUID, actorID kernel.UUID) (GetOrderQuery, error) {
	q, err := NewGetOrderQuery(orderID, actorID)
	if err != nil {
		return GetOrderQuery{}, err
	}

	q.afterWrite = true
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the identifier of the requesting user.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// AfterWrite reports whether the view policy check is skipped.
func (q GetOrderQuery) AfterWrite() bool {
	return q.afterWrite
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor id", err)
	}

	q.actorID = actorID
	return nil
}

// OrderOwnerResponse identifies the order's owner in the read model.
type OrderOwnerResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
}

// OrderResponse is the full order read model returned by order queries.
type OrderResponse struct {
	ID            kernel.UUID
	Owner         OrderOwnerResponse
	Destination   string
	DepartureDate kernel.Date
	ReturnDate    kernel.Date
	Status        order.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
