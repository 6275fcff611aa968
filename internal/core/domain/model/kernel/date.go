package kernel

import (
	"fmt"
	"time"

	"travelorders/internal/pkg/errs"
)

const (
	// WireDateLayout is the calendar-date format used in API responses and
	// notification payloads.
	WireDateLayout = "02/01/2006"

	// QueryDateLayout is the calendar-date format accepted in request bodies
	// and query string filters.
	QueryDateLayout = "2006-01-02"
)

// ErrDateIsNotConstructed indicates that a Date was not properly initialized
// through one of the constructor functions.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate, DateFromString, or DateFromTime")

// Date is a value object representing a calendar date with no time-of-day
// component. Travel orders deal in whole days; keeping the value normalized
// to midnight UTC makes comparisons and range checks exact.
//
// The zero value is invalid and fails Validate.
type Date struct {
	t time.Time
}

// NewDate creates a Date from a year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime truncates a time.Time to its calendar date.
func DateFromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return DateFromTime(time.Now())
}

// DateFromString parses a date in "yyyy-mm-dd" form.
// Returns a validation error for anything else, including partial timestamps.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(QueryDateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%q is not a date in %s form", s, QueryDateLayout))
	}
	return DateFromTime(t), nil
}

// String formats the date in the wire ("dd/mm/yyyy") form.
func (d Date) String() string {
	return d.t.Format(WireDateLayout)
}

// QueryString formats the date in the "yyyy-mm-dd" form used for storage
// and query parameters.
func (d Date) QueryString() string {
	return d.t.Format(QueryDateLayout)
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// IsEqual reports whether both values name the same calendar date.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// Validate returns ErrDateIsNotConstructed for the zero value.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
