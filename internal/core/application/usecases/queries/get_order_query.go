// Package queries contains read operations implementing the query side of
// the CQRS architecture. Handlers run directly against the database and
// return read-model structs; they never load domain aggregates.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its lines. Subject to the read
// policy: the owner and staff may see the order, other customers may not.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order on behalf of the
// given actor.
func NewGetOrderQuery(orderID kernel.UUID, act actor.Actor) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := act.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   act,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the user requesting the order.
func (q GetOrderQuery) Actor() actor.Actor {
	return q.actor
}

// OrderItemResponse represents one order line in read responses.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice int64
	Total     int64
}

// GetOrderQueryResponse represents the full order read model.
type GetOrderQueryResponse struct {
	ID        kernel.UUID
	OwnerID   kernel.UUID
	Status    order.Status
	CreatedAt time.Time
	Total     int64
	Items     []OrderItemResponse
}
