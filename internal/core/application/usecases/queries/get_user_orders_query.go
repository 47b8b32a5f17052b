package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

const (
	// MaxPageSize caps the limit parameter of paged queries.
	MaxPageSize = 100
	// DefaultPageSize is used by adapters when the caller does not specify a limit.
	DefaultPageSize = 20
)

// GetUserOrdersQuery retrieves one user's order history, newest first.
// Customers may only request their own history; staff may request anyone's.
type GetUserOrdersQuery struct {
	userID kernel.UUID
	actor  actor.Actor
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a paged query over a user's orders.
// Page starts at 1; limit must be within (0, MaxPageSize].
func NewGetUserOrdersQuery(userID kernel.UUID, act actor.Actor,
	page int, limit int) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	if err := act.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	if page < 1 {
		return GetUserOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}
	if limit < 1 || limit > MaxPageSize {
		return GetUserOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}

	return GetUserOrdersQuery{
		userID: userID,
		actor:  act,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the user whose orders are requested.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Actor returns the requesting user.
func (q GetUserOrdersQuery) Actor() actor.Actor {
	return q.actor
}

// Page returns the 1-based page number.
func (q GetUserOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetUserOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the row offset derived from page and limit.
func (q GetUserOrdersQuery) Offset() int {
	return (q.page - 1) * q.limit
}

// OrderSummaryResponse represents one order in a listing: header data plus
// aggregated line totals, without the individual lines.
type OrderSummaryResponse struct {
	ID        kernel.UUID
	OwnerID   kernel.UUID
	Status    order.Status
	CreatedAt time.Time
	ItemCount int
	Total     int64
}
