package ports

import (
	"ordering/internal/notifications"
)

// NotificationQueue is the outbound port command handlers use to emit
// notification events after a successful commit. Enqueue never blocks on
// delivery and an enqueue problem must never fail the business operation.
type NotificationQueue interface {
	// Enqueue accepts the event for asynchronous dispatch. The only error is
	// an invalid event.
	Enqueue(event notifications.Event) error

	// Status returns a consistent snapshot of the queue state.
	Status() notifications.QueueStatus
}
