package notifications

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when an Event was not created through
// one of the event factory functions.
var ErrEventIsNotConstructed = errors.New("Event must be created via its factory function")

// EventType identifies the kind of notification event on the wire and in
// logs and metrics.
type EventType string

const (
	EventTypeOrderCreated      EventType = "order_created"
	EventTypeOrderStatusUpdate EventType = "order_status_update"
	EventTypeOrderCancelled    EventType = "order_cancelled"
)

// Event is an immutable notification payload: a typed message addressed to a
// single user about a single order. The message text is rendered at
// construction time so dispatch needs no domain knowledge. Events only live
// in memory; once dispatched (or dropped after a failed dispatch) they are
// gone.
type Event struct { //nolint:recvcheck //using for validation
	eventType    EventType
	targetUserID kernel.UUID
	orderID      kernel.UUID
	message      string

	// seq is assigned by the queue at enqueue time.
	seq uint64

	guard guard.ConstructorGuard
}

// NewOrderCreatedEvent builds the event sent to the owner right after their
// order has been placed.
func NewOrderCreatedEvent(targetUserID kernel.UUID, orderID kernel.UUID) (Event, error) {
	return newEvent(EventTypeOrderCreated, targetUserID, orderID,
		fmt.Sprintf("Your order #%s has been placed successfully.", orderID))
}

// NewOrderStatusUpdateEvent builds the event sent to the owner when their
// order moves to a new fulfilment status.
func NewOrderStatusUpdateEvent(targetUserID kernel.UUID, orderID kernel.UUID,
	newStatus order.Status) (Event, error) {
	if err := newStatus.Validate(); err != nil {
		return Event{}, err
	}
	return newEvent(EventTypeOrderStatusUpdate, targetUserID, orderID,
		fmt.Sprintf("Your order #%s status has been updated to %s.", orderID, newStatus))
}

// NewOrderCancelledEvent builds the event sent to the owner when their order
// has been cancelled, by themselves or by staff.
func NewOrderCancelledEvent(targetUserID kernel.UUID, orderID kernel.UUID) (Event, error) {
	return newEvent(EventTypeOrderCancelled, targetUserID, orderID,
		fmt.Sprintf("Your order #%s has been cancelled.", orderID))
}

func newEvent(eventType EventType, targetUserID kernel.UUID, orderID kernel.UUID,
	message string) (Event, error) {
	if err := targetUserID.Validate(); err != nil {
		return Event{}, errs.NewValueIsRequiredErrorWithCause("targetUserID", err)
	}
	if err := orderID.Validate(); err != nil {
		return Event{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return Event{
		eventType:    eventType,
		targetUserID: targetUserID,
		orderID:      orderID,
		message:      message,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Event was created through a factory function.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// Type returns the event kind.
func (e Event) Type() EventType {
	return e.eventType
}

// TargetUserID returns the user the notification is addressed to.
func (e Event) TargetUserID() kernel.UUID {
	return e.targetUserID
}

// OrderID returns the order the notification is about.
func (e Event) OrderID() kernel.UUID {
	return e.orderID
}

// Message returns the pre-rendered notification text.
func (e Event) Message() string {
	return e.message
}

// Seq returns the queue-assigned sequence number. It is zero until the event
// has been enqueued.
func (e Event) Seq() uint64 {
	return e.seq
}
