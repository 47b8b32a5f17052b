package commands

import (
	"errors"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents a request to move an order to a new
// lifecycle status: a fulfilment step by staff or a cancellation by the
// owner or staff. Cancellation is just the Cancelled target status; there is
// no separate cancel command.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	actor     actor.Actor

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order's
// status. The target status must be a known status; whether the edge is
// legal from the order's current status is decided by the aggregate when
// the command is handled.
func NewAdvanceOrderStatusCommand(orderID kernel.UUID, newStatus order.Status,
	act actor.Actor) (AdvanceOrderStatusCommand, error) {
	statusCommand := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
		statusCommand.setActor(act),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c AdvanceOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Actor returns the user requesting the transition.
func (c AdvanceOrderStatusCommand) Actor() actor.Actor {
	return c.actor
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *AdvanceOrderStatusCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}
