package product

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrInsufficientStock is returned by Reserve when the requested quantity
	// exceeds the units currently in stock. Stock is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product represents a catalog item that customers can order.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price (in cents) must not be negative
//   - Stock must not be negative; Reserve never drives it below zero
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the display name shown in the catalog
	name string

	// description is optional free text
	description string

	// price is the current unit price in cents
	price int64

	// stock is the number of units available for ordering
	stock int

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new Product with validation.
func NewProduct(id kernel.UUID, name string, description string, price int64, stock int) (*Product, error) {
	return RestoreProduct(id, name, description, price, stock)
}

// RestoreProduct reconstructs a Product from persisted state, enforcing the
// same invariants as NewProduct.
func RestoreProduct(id kernel.UUID, name string, description string, price int64, stock int) (*Product, error) {
	product := &Product{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's free-text description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price in cents.
func (p *Product) Price() int64 {
	return p.price
}

// Stock returns the number of units available for ordering.
func (p *Product) Stock() int {
	return p.stock
}

// Reserve removes quantity units from stock for a new order line.
//
// Returns an error wrapping ErrInsufficientStock when fewer than quantity
// units are available; stock is unchanged in that case.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if quantity > p.stock {
		return fmt.Errorf("%w: requested %d, have %d", ErrInsufficientStock, quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// Restock adds quantity units back to stock.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}

// ChangePrice sets a new unit price in cents. Orders placed earlier keep the
// price captured at order time.
func (p *Product) ChangePrice(price int64) error {
	if err := p.setPrice(price); err != nil {
		return err
	}
	return nil
}

// setID validates and sets the product's unique identifier.
// This is a private method used only during construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the display name.
// This is a private method used only during construction.
func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setPrice validates and sets the unit price.
func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%d is negative", price))
	}
	p.price = price
	return nil
}

// setStock validates and sets the available stock.
// This is a private method used only during construction.
func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
