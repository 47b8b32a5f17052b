package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/notifications"
)

// AdvanceOrderStatusCommandHandler handles order lifecycle transitions.
//
// The handling order is fixed: authorization runs before the transition
// check, so a caller without the right role gets a policy error even when
// the requested edge would also be illegal. On a successful commit the
// handler enqueues at most one notification for the owner: a status update
// for shipped and delivered, a cancellation notice for cancelled, nothing
// for the pending to processing step.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.TransitionPolicy
	queue      ports.NotificationQueue
}

// NewAdvanceOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory,
	policy services.TransitionPolicy, queue ports.NotificationQueue) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		queue:      queue,
	}
}

// Handle processes the status transition command.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context,
	cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeTransition(cmd.Actor(), aggregate, cmd.NewStatus()); err != nil {
		return err
	}

	if err = aggregate.AdvanceTo(cmd.NewStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.enqueueNotification(aggregate)

	return nil
}

func (h *AdvanceOrderStatusCommandHandler) enqueueNotification(aggregate *order.Order) {
	var (
		event    notifications.Event
		eventErr error
	)

	switch aggregate.Status() {
	case order.Shipped, order.Delivered:
		event, eventErr = notifications.NewOrderStatusUpdateEvent(
			aggregate.OwnerID(), aggregate.ID(), aggregate.Status())
	case order.Cancelled:
		event, eventErr = notifications.NewOrderCancelledEvent(
			aggregate.OwnerID(), aggregate.ID())
	default:
		return
	}

	if eventErr != nil {
		return
	}

	_ = h.queue.Enqueue(event)
}
