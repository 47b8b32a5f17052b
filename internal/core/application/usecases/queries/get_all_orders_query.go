package queries

import (
	"errors"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the system, newest first, with
// an optional status filter. Staff only.
type GetAllOrdersQuery struct {
	actor        actor.Actor
	page         int
	limit        int
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a paged listing query over all orders.
// statusFilter may be nil to list every status.
func NewGetAllOrdersQuery(act actor.Actor, page int, limit int,
	statusFilter *order.Status) (GetAllOrdersQuery, error) {
	if err := act.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}
	if page < 1 {
		return GetAllOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}
	if limit < 1 || limit > MaxPageSize {
		return GetAllOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	return GetAllOrdersQuery{
		actor:        act,
		page:         page,
		limit:        limit,
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Actor returns the requesting user.
func (q GetAllOrdersQuery) Actor() actor.Actor {
	return q.actor
}

// Page returns the 1-based page number.
func (q GetAllOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetAllOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the row offset derived from page and limit.
func (q GetAllOrdersQuery) Offset() int {
	return (q.page - 1) * q.limit
}

// StatusFilter returns the optional status filter, nil when absent.
func (q GetAllOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}
