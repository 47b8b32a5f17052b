package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/notifications"
)

// InvalidItemsError reports the first order line that could not be
// fulfilled: an unknown product or insufficient stock. Nothing is persisted
// when it is returned.
type InvalidItemsError struct {
	ProductID kernel.UUID
	Cause     error
}

func (e *InvalidItemsError) Error() string {
	return fmt.Sprintf("invalid order line for product %s: %s", e.ProductID, e.Cause)
}

func (e *InvalidItemsError) Unwrap() error {
	return e.Cause
}

// NewInvalidItemsError creates an InvalidItemsError naming the offending
// product line.
func NewInvalidItemsError(productID kernel.UUID, cause error) *InvalidItemsError {
	return &InvalidItemsError{ProductID: productID, Cause: cause}
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Validates every requested line against the product catalog, reserves
// stock, captures the unit price at order time, and persists the order in
// pending status inside one transaction. On success it enqueues exactly one
// order_created notification for the owner; the enqueue happens after the
// commit and can never fail the request.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
	queue      ports.NotificationQueue
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. Requires a UoWFactory spanning order and product aggregates,
// the transition policy, and the notification queue.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, policy services.TransitionPolicy,
	queue ports.NotificationQueue) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		queue:      queue,
	}
}

// Handle processes the order creation command.
// Only customers may place orders; the acting user becomes the owner.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.AuthorizeCreate(cmd.Actor()); err != nil {
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
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		prod, err := productRepo.Get(ctx, line.ProductID())
		if err != nil {
			return NewInvalidItemsError(line.ProductID(), err)
		}

		if err = prod.Reserve(line.Quantity()); err != nil {
			return NewInvalidItemsError(line.ProductID(), err)
		}

		item, err := order.NewItem(line.ProductID(), line.Quantity(), prod.Price())
		if err != nil {
			return err
		}
		items = append(items, item)

		if err = productRepo.Update(ctx, prod); err != nil {
			return err
		}
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Actor().UserID(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if event, eventErr := notifications.NewOrderCreatedEvent(
		aggregate.OwnerID(), aggregate.ID()); eventErr == nil {
		_ = h.queue.Enqueue(event)
	}

	return nil
}
