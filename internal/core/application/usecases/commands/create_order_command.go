package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to submit a new travel order.
// The acting user becomes the order's owner; destination and travel dates
// are validated again by the aggregate on creation.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	ownerID     kernel.UUID
	destination string
	period      kernel.TravelPeriod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a travel order.
// Validates that identifiers are constructed, the destination is present,
// and the travel period is well formed.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	ownerID kernel.UUID,
	destination string,
	period kernel.TravelPeriod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setDestination(destination),
		cmd.setPeriod(period),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the submitting user.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Destination returns the requested destination.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// Period returns the requested travel dates.
func (c CreateOrderCommand) Period() kernel.TravelPeriod {
	return c.period
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setPeriod(period kernel.TravelPeriod) error {
	if err := period.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("travel period", err)
	}

	c.period = period
	return nil
}
