package order

import (
	"fmt"

	"travelorders/internal/pkg/errs"
)

// Status represents the lifecycle state of a travel order.
//
// Unlike a strict transition graph, any valid status may be set from any
// other through the generic update path; the state only gates two things:
// a Canceled order cannot be canceled again, and only changes landing on
// Approved or Canceled notify the owner.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status of every new travel order.
	Requested

	// Approved indicates a reviewer accepted the travel order.
	Approved

	// Canceled indicates the order was withdrawn or rejected.
	// Cancellation is a status value; orders are never deleted.
	Canceled
)

// getStatusStrings returns a map of Status values to their wire names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Requested: "requested",
		Approved:  "approved",
		Canceled:  "canceled",
	}
}

// getValidStatusStrings returns only the statuses accepted on input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "requested",
		Approved:  "approved",
		Canceled:  "canceled",
	}
}

// StatusFromString parses a wire status name. The parse is total over the
// accepted input set: exactly "requested", "approved", and "canceled"
// succeed and anything else is a validation error.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the accepted values.
// Unknown (0) and any other numeric value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer
// and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Notifies reports whether an order landing on this status notifies the
// owner. Only Approved and Canceled are announced.
func (s Status) Notifies() bool {
	return s == Approved || s == Canceled
}

// Cancel transitions the status to Canceled.
//
// Returns a business-rule error if the order is already Canceled;
// re-canceling must not mutate state or notify.
func (s Status) Cancel() (Status, error) {
	if s == Canceled {
		return 0, errs.NewBusinessRuleErrorWithCause(
			"order cannot be canceled",
			fmt.Errorf("status is already %s", s),
		)
	}

	return Canceled, nil
}
