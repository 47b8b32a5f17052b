package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery retrieves order counts grouped by status. Used by
// the staff dashboard endpoint and the periodic statistics job; the HTTP
// adapter restricts the endpoint to staff.
type GetOrderStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a parameterless statistics query.
func NewGetOrderStatisticsQuery() GetOrderStatisticsQuery {
	return GetOrderStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// GetOrderStatisticsQueryResponse holds order counts per status plus the
// overall total. Statuses without orders are present with a zero count.
type GetOrderStatisticsQueryResponse struct {
	Total    int64
	ByStatus map[order.Status]int64
}
