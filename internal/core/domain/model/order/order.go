package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from placement through delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Must contain at least one item; items are immutable after creation
//   - Unit prices are captured at order time and never recomputed
//   - Status only moves along the edges defined by the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; the status field
// changes only through AdvanceTo.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID is the customer who placed the order
	ownerID kernel.UUID

	// items are the order lines, fixed at creation
	items []Item

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the placement timestamp (UTC)
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is
// the only way to create a fresh order, ensuring all business invariants
// hold from the start.
//
// Returns an error if the id or owner is invalid, if items is empty, or if
// any item was not built through NewItem.
func NewOrder(id kernel.UUID, ownerID kernel.UUID, items []Item) (*Order, error) {
	return RestoreOrder(id, ownerID, items, Pending, time.Now().UTC())
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder
// it accepts any valid status, allowing repositories to rebuild aggregates
// mid-lifecycle. The same invariants are enforced.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
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

// OwnerID returns the identifier of the customer who placed the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// IsOwnedBy reports whether the given user placed this order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

// Items returns a copy of the order lines. The copy keeps the aggregate's
// internal slice immutable to callers.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the order total in cents, summed over captured line prices.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

// AdvanceTo moves the order to newStatus along a legal lifecycle edge.
//
// Returns an error wrapping ErrInvalidStatusTransition if (current, new) is
// not in the transition table; the order is left unchanged in that case.
// Authorization of the caller is not this method's concern — see the
// transition policy domain service.
func (o *Order) AdvanceTo(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOwnerID validates and sets the owning customer.
// This is a private method used only during construction.
func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

// setItems validates and copies the order lines. Orders must contain at
// least one item and at most one line per product; quantity expresses
// multiples. This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]bool, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if seen[item.ProductID()] {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("duplicate line for product %s", item.ProductID()))
		}
		seen[item.ProductID()] = true
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setStatus validates and sets the lifecycle state.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
