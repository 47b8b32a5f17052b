package commands

import (
	"errors"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRestockProductCommandIsNotConstructed = errors.New(
	"RestockProductCommand must be created via NewRestockProductCommand constructor",
)

// RestockProductCommand represents an administrator's request to add stock
// to an existing product.
type RestockProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	actor     actor.Actor

	guard guard.ConstructorGuard
}

// NewRestockProductCommand creates a command to replenish product stock.
// Quantity must be positive.
func NewRestockProductCommand(productID kernel.UUID, quantity int,
	act actor.Actor) (RestockProductCommand, error) {
	restockCommand := RestockProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restockCommand.setProductID(productID),
		restockCommand.setQuantity(quantity),
		restockCommand.setActor(act),
	); err != nil {
		return RestockProductCommand{}, err
	}

	return restockCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

// ProductID returns the product to restock.
func (c RestockProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c RestockProductCommand) Quantity() int {
	return c.quantity
}

// Actor returns the user requesting the restock.
func (c RestockProductCommand) Actor() actor.Actor {
	return c.actor
}

func (c *RestockProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RestockProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *RestockProductCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}
