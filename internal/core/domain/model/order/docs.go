// Package order provides domain entities and business logic for customer
// orders. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: An immutable order line with the unit price captured at order time
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, owner, and at least one item
//   - Order status follows the workflow: pending -> processing -> shipped -> delivered
//   - Pending and processing orders may instead be cancelled
//   - Delivered and cancelled are terminal states
//   - Line prices are captured at order time and never recomputed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
