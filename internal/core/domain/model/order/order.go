package order

import (
	"errors"
	"fmt"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
)

// MaxDestinationLength caps the destination free-text field.
const MaxDestinationLength = 255

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a travel order request. It is the aggregate root managing
// the order lifecycle from submission through approval or cancellation.
//
// Order maintains these invariants:
//   - Valid unique identifier and owner identifier; the owner never changes
//   - Non-empty destination of at most MaxDestinationLength characters
//   - Return date not earlier than departure date (held by TravelPeriod)
//   - Status is always one of the accepted values
//   - Instances exist only via NewOrder or RestoreOrder
//
// Timestamps are owned by the aggregate: createdAt is set at construction
// and updatedAt advances on every status change.
type Order struct {
	id      kernel.UUID
	ownerID kernel.UUID

	destination string
	period      kernel.TravelPeriod

	status Status

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new travel order owned by ownerID, in Requested status.
//
// The departure date must not precede the creation date; this is validated
// here, at creation, and deliberately not re-checked on later status
// updates.
func NewOrder(id kernel.UUID, ownerID kernel.UUID, destination string, period kernel.TravelPeriod) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Requested,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setDestination(destination),
		o.setPeriod(period),
	); err != nil {
		return nil, err
	}

	if period.Departure().Before(kernel.Today()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("departure date",
			fmt.Errorf("%s is in the past", period.Departure()))
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation-time date checks; stored orders may legitimately have departure
// dates in the past.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	destination string,
	period kernel.TravelPeriod,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setDestination(destination),
		o.setPeriod(period),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the user who created the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// IsOwnedBy reports whether the given user created the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

// Destination returns the travel destination.
func (o *Order) Destination() string {
	return o.destination
}

// Period returns the departure/return date pair.
func (o *Order) Period() kernel.TravelPeriod {
	return o.period
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus sets the order's status to next.
//
// Any accepted status value may be set from any other; there is no
// transition graph on this path (Approved back to Requested is permitted).
// The returned flag reports whether the change requires a notification to
// the owner: true only when the landing status is Approved or Canceled AND
// it differs from the prior status. A no-op change (next == current) is not
// an error and never notifies.
func (o *Order) ChangeStatus(next Status) (notify bool, err error) {
	if err := next.Validate(); err != nil {
		return false, err
	}

	prev := o.status
	o.status = next
	if prev != next {
		o.updatedAt = time.Now().UTC()
	}

	return next.Notifies() && prev != next, nil
}

// Cancel sets the order's status to Canceled.
//
// Fails with a business-rule error when the order is already Canceled,
// leaving state untouched. On success the returned flag is always true: a
// successful cancellation always notifies the owner.
func (o *Order) Cancel() (notify bool, err error) {
	next, err := o.status.Cancel()
	if err != nil {
		return false, err
	}

	o.status = next
	o.updatedAt = time.Now().UTC()
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	if len(destination) > MaxDestinationLength {
		return errs.NewValueIsInvalidErrorWithCause("destination",
			fmt.Errorf("%d characters exceeds the maximum of %d", len(destination), MaxDestinationLength))
	}
	o.destination = destination
	return nil
}

func (o *Order) setPeriod(period kernel.TravelPeriod) error {
	if err := period.Validate(); err != nil {
		return err
	}
	o.period = period
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
