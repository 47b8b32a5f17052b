package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/monitoring"
)

// ErrQueueIsNotConstructed is returned when a Queue was not created through
// the NewQueue factory function.
var ErrQueueIsNotConstructed = errors.New("Queue must be created via NewQueue constructor")

// QueueStatus is a consistent point-in-time snapshot of the queue: both
// fields are read under the same lock, so IsDraining is never false while
// Pending is non-zero.
type QueueStatus struct {
	Pending    int
	IsDraining bool
}

// Queue is an unbounded in-memory FIFO of notification events with a lazy,
// single consumer. Producers call Enqueue from request handlers; the first
// event appended to an idle queue starts one drain goroutine, and at most
// one runs at any time. The consumer dispatches events strictly in enqueue
// order and exits once the queue is empty.
//
// Delivery is fire-and-forget: a failed dispatch is logged with the full
// event context and the event is dropped. Nothing survives a process
// restart.
type Queue struct {
	dispatcher Dispatcher
	logger     *slog.Logger
	metrics    *monitoring.NotificationMetrics

	mu       sync.Mutex
	pending  []Event
	draining bool
	nextSeq  uint64

	isConstructed bool
}

// NewQueue creates the notification queue. The queue is constructed once in
// the composition root and shared by every producer.
func NewQueue(dispatcher Dispatcher, logger *slog.Logger,
	metrics *monitoring.NotificationMetrics) (*Queue, error) {
	if dispatcher == nil {
		return nil, errs.NewValueIsRequiredError("dispatcher")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if metrics == nil {
		return nil, errs.NewValueIsRequiredError("metrics")
	}

	return &Queue{
		dispatcher:    dispatcher,
		logger:        logger.With("component", "NotificationQueue"),
		metrics:       metrics,
		isConstructed: true,
	}, nil
}

// Validate ensures the Queue was created through NewQueue.
func (q *Queue) Validate() error {
	if !q.isConstructed {
		return ErrQueueIsNotConstructed
	}
	return nil
}

// Enqueue appends the event and wakes the consumer if it is idle. It never
// blocks on delivery and never fails the caller for delivery reasons: the
// only error is an invalid event, detected before anything is queued.
func (q *Queue) Enqueue(event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	q.mu.Lock()
	q.nextSeq++
	event.seq = q.nextSeq
	q.pending = append(q.pending, event)
	q.metrics.QueueDepth.Set(float64(len(q.pending)))

	startDrain := !q.draining
	if startDrain {
		q.draining = true
	}
	q.mu.Unlock()

	if startDrain {
		go q.drain()
	}

	return nil
}

// Status returns a consistent snapshot of the queue state.
func (q *Queue) Status() QueueStatus {
	q.mu.Lock()
	defer q.mu.Unlock()

	return QueueStatus{
		Pending:    len(q.pending),
		IsDraining: q.draining,
	}
}

// drain is the single consumer loop. The pop and the empty check happen
// under the same lock that Enqueue appends under, so an event appended
// between the last pop and the teardown decision is always seen: either the
// loop picks it up, or draining stays false only when pending is truly
// empty and the next Enqueue starts a fresh consumer.
func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.draining = false
			q.mu.Unlock()
			return
		}
		event := q.pending[0]
		q.pending = q.pending[1:]
		q.metrics.QueueDepth.Set(float64(len(q.pending)))
		q.mu.Unlock()

		q.dispatch(event)
	}
}

func (q *Queue) dispatch(event Event) {
	if err := q.dispatcher.Dispatch(context.Background(), event); err != nil {
		q.metrics.Failed.WithLabelValues(string(event.Type())).Inc()
		q.logger.Error("notification dispatch failed, dropping event",
			"seq", event.Seq(),
			"type", string(event.Type()),
			"order_id", event.OrderID().String(),
			"target_user_id", event.TargetUserID().String(),
			"message", event.Message(),
			"error", err)
		return
	}

	q.metrics.Dispatched.WithLabelValues(string(event.Type())).Inc()
}
