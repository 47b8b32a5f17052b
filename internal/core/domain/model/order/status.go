package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change is
// not an edge of the order lifecycle. The order is left unchanged.
var ErrInvalidStatusTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the correct
// business workflow.
//
// State transitions:
//
//	pending ──> processing ──> shipped ──> delivered
//	   │             │
//	   └─> cancelled <┘
//
// delivered and cancelled are terminal. Status is a value object that
// validates state transitions and provides string representations for
// persistence and the HTTP surface.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Pending orders can move to processing or be cancelled.
	Pending

	// Processing indicates the order has been accepted and is being prepared.
	// Processing orders can be shipped or cancelled.
	Processing

	// Shipped indicates the order has left the warehouse.
	// Shipped orders can only be delivered.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions.
	Delivered

	// Cancelled indicates the order was cancelled before shipping.
	// This is a terminal state with no further transitions.
	Cancelled
)

// getStatusStrings returns all Status values with their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values to support
// validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns the complete edge table of the order lifecycle.
// Any (from, to) pair not listed here is an invalid transition.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
	}
}

// StatusFromString parses a status from its wire representation
// ("pending", "processing", "shipped", "delivered", "cancelled").
// Returns an error for anything else, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five defined lifecycle
// states. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer
// and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether (s, next) is an edge of the lifecycle
// table without performing the transition. Useful for pre-validation.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the status along the (s, next) edge.
//
// Returns:
//   - (next, nil) when the edge is in the lifecycle table
//   - (0, error wrapping ErrInvalidStatusTransition) otherwise
//
// This method is used by Order.AdvanceTo to enforce the state machine.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s, next)
	}

	return next, nil
}
