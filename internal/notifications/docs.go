// Package notifications implements the in-memory notification pipeline: the
// Event payload, the Dispatcher delivery port, and the Queue that buffers
// events and drains them through the dispatcher with a lazy single consumer.
//
// The pipeline is deliberately volatile. Notifications are a side effect of
// order lifecycle changes, never part of their transactional outcome:
// enqueueing cannot fail a request, failed deliveries are logged and
// dropped, and a restart forgets whatever was buffered.
package notifications
