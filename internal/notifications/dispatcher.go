package notifications

import "context"

// Dispatcher delivers a single notification event to its recipient. The
// queue calls Dispatch sequentially from its drain goroutine; an error means
// the event could not be delivered and will be dropped after logging.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}
