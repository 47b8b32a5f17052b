package services

import (
	"errors"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/order"
)

// ErrActorNotAllowed is returned when the caller's role or ownership does
// not permit the requested operation. No further detail is attached so the
// error can be surfaced to clients without leaking internals.
var ErrActorNotAllowed = errors.New("actor is not allowed to perform this operation")

// TransitionPolicy is a domain service holding the single authorization
// table for order operations: who may drive which lifecycle edge, who may
// read an order, and who may manage the catalog.
//
// Policy rules:
//   - Order creation: customers only; the creator becomes the owner
//   - Cancellation edges: the order's owner, or any manager/admin
//   - Fulfilment edges (to processing, shipped, delivered): manager/admin only
//   - Reading an order: the owner, or any manager/admin
//   - Catalog management: admin only
//
// The policy decides who may request an edge; whether the edge itself is
// legal is the Status state machine's concern.
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// AuthorizeCreate checks that the actor may place a new order.
func (p TransitionPolicy) AuthorizeCreate(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}

	if act.Role() != actor.RoleCustomer {
		return ErrActorNotAllowed
	}

	return nil
}

// AuthorizeTransition checks that the actor may move the order to newStatus.
//
// Returns ErrActorNotAllowed when the role/ownership rules reject the
// caller. The target status is only inspected to pick the applicable rule;
// edge legality is validated separately by the aggregate.
func (p TransitionPolicy) AuthorizeTransition(act actor.Actor, o *order.Order, newStatus order.Status) error {
	if err := act.Validate(); err != nil {
		return err
	}

	if err := o.Validate(); err != nil {
		return err
	}

	if newStatus == order.Cancelled {
		if o.IsOwnedBy(act.UserID()) || act.IsStaff() {
			return nil
		}
		return ErrActorNotAllowed
	}

	if !act.IsStaff() {
		return ErrActorNotAllowed
	}

	return nil
}

// AuthorizeRead checks that the actor may see the order: the owner and any
// manager/admin may, other customers may not.
func (p TransitionPolicy) AuthorizeRead(act actor.Actor, o *order.Order) error {
	if err := act.Validate(); err != nil {
		return err
	}

	if err := o.Validate(); err != nil {
		return err
	}

	if o.IsOwnedBy(act.UserID()) || act.IsStaff() {
		return nil
	}

	return ErrActorNotAllowed
}

// AuthorizeCatalogManagement checks that the actor may create or restock
// products.
func (p TransitionPolicy) AuthorizeCatalogManagement(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}

	if act.Role() != actor.RoleAdmin {
		return ErrActorNotAllowed
	}

	return nil
}
