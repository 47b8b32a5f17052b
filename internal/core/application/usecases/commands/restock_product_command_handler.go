package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// RestockProductCommandHandler handles stock replenishment. Admin only.
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.TransitionPolicy
}

// NewRestockProductCommandHandler creates a handler for product restock
// operations.
func NewRestockProductCommandHandler(uowFactory ProductUoWFactory,
	policy services.TransitionPolicy) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the restock command.
func (h *RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) error {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.Restock(cmd.Quantity()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
