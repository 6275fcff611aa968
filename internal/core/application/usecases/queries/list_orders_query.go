package queries

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

// PageSize is the fixed number of orders per result page.
const PageSize = 15

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersFilter narrows the order listing. Zero values mean "no filter":
// an Unknown status matches everything, an empty destination skips the
// substring match, and the date range applies only when both bounds are
// constructed dates.
type ListOrdersFilter struct {
	Status      order.Status
	StartDate   kernel.Date
	EndDate     kernel.Date
	Destination string
}

// ListOrdersQuery retrieves a page of travel orders visible to the actor.
// Actors without the view-orders permission only ever see their own orders,
// whatever the filters say.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	filter  ListOrdersFilter
	page    int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for one page of the order listing.
// Page numbering starts at 1. A date range with only one bound set is
// treated as no date filter at all.
func NewListOrdersQuery(actorID kernel.UUID, filter ListOrdersFilter, page int) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActorID(actorID),
		q.setFilter(filter),
		q.setPage(page),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ActorID returns the identifier of the requesting user.
func (q ListOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Filter returns the listing filter.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

func (q *ListOrdersQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor id", err)
	}

	q.actorID = actorID
	return nil
}

func (q *ListOrdersQuery) setFilter(filter ListOrdersFilter) error {
	if filter.Status != order.Unknown {
		if err := filter.Status.Validate(); err != nil {
			return err
		}
	}

	hasStart := filter.StartDate.Validate() == nil
	hasEnd := filter.EndDate.Validate() == nil
	if hasStart != hasEnd {
		// A single bound cannot form a range; drop it so the listing
		// behaves as if no date filter were given.
		filter.StartDate, filter.EndDate = kernel.Date{}, kernel.Date{}
	}
	if hasStart && hasEnd && filter.EndDate.Before(filter.StartDate) {
		return errs.NewValueIsInvalidError("date range")
	}

	q.filter = filter
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page < 1 {
		return errs.NewValueIsInvalidError("page")
	}

	q.page = page
	return nil
}

// ListOrdersQueryResponse is one page of the order listing.
type ListOrdersQueryResponse struct {
	Orders  []OrderResponse
	Page    int
	PerPage int
	Total   int64
}
