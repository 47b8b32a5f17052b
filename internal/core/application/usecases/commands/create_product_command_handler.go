package commands

import (
	"context"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
)

// CreateProductCommandHandler handles catalog product creation. Admin only.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.TransitionPolicy
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory,
	policy services.TransitionPolicy) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.AuthorizeCatalogManagement(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Description(),
		cmd.Price(), cmd.Stock())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
