// Package ports defines the outbound contracts of the application core:
// repositories, the unit of work, and the notification queue. Adapters
// implement them; command handlers depend only on the interfaces.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier. Every call
	// rebuilds a fresh aggregate instance from the stored record.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
