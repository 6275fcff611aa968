package kernel

import (
	"fmt"

	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

// ErrTravelPeriodIsNotConstructed indicates that a TravelPeriod was not
// created through NewTravelPeriod.
var ErrTravelPeriodIsNotConstructed = errs.NewValueIsRequiredError("TravelPeriod must be created via NewTravelPeriod")

// TravelPeriod is a value object pairing a departure date with a return date.
// Invariant: the return date is never earlier than the departure date.
type TravelPeriod struct {
	departure Date
	ret       Date

	guard guard.ConstructorGuard
}

// NewTravelPeriod creates a validated TravelPeriod.
// Both dates must be constructed and the return date must not precede the
// departure date.
func NewTravelPeriod(departure Date, returnDate Date) (TravelPeriod, error) {
	if err := departure.Validate(); err != nil {
		return TravelPeriod{}, errs.NewValueIsRequiredErrorWithCause("departure date", err)
	}
	if err := returnDate.Validate(); err != nil {
		return TravelPeriod{}, errs.NewValueIsRequiredErrorWithCause("return date", err)
	}
	if returnDate.Before(departure) {
		return TravelPeriod{}, errs.NewValueIsInvalidErrorWithCause("return date",
			fmt.Errorf("%s is before departure date %s", returnDate, departure))
	}

	return TravelPeriod{
		departure: departure,
		ret:       returnDate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Departure returns the departure date.
func (p TravelPeriod) Departure() Date {
	return p.departure
}

// Return returns the return date.
func (p TravelPeriod) Return() Date {
	return p.ret
}

// Validate ensures the period was created through NewTravelPeriod.
func (p TravelPeriod) Validate() error {
	return p.guard.Validate(ErrTravelPeriodIsNotConstructed)
}
