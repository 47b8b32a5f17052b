// Package notifier contains outbound adapters implementing the notification
// Dispatcher port.
package notifier

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordering/internal/notifications"
	"ordering/internal/pkg/errs"
)

// ErrLogNotifierIsNotConstructed is returned when a LogNotifier was not
// created through the NewLogNotifier factory function.
var ErrLogNotifierIsNotConstructed = errors.New(
	"LogNotifier must be created via NewLogNotifier constructor")

// LogNotifier stands in for an external notification channel (email, push).
// It waits for the configured latency to model the round trip of a real
// provider, then writes the delivery to the log. Stateless and safe for
// concurrent use, although the queue only calls it from one goroutine.
type LogNotifier struct {
	latency time.Duration
	logger  *slog.Logger

	isConstructed bool
}

// NewLogNotifier creates the notifier. Latency must not be negative; zero
// disables the simulated round trip, which tests rely on.
func NewLogNotifier(latency time.Duration, logger *slog.Logger) (*LogNotifier, error) {
	if latency < 0 {
		return nil, errs.NewValueIsInvalidError("latency")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &LogNotifier{
		latency:       latency,
		logger:        logger.With("component", "LogNotifier"),
		isConstructed: true,
	}, nil
}

// Validate ensures the LogNotifier was created through NewLogNotifier.
func (n *LogNotifier) Validate() error {
	if !n.isConstructed {
		return ErrLogNotifierIsNotConstructed
	}
	return nil
}

// Dispatch delivers a single event. The latency wait respects ctx so a
// shutdown does not hang on an in-flight send.
func (n *LogNotifier) Dispatch(ctx context.Context, event notifications.Event) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if err := event.Validate(); err != nil {
		return err
	}

	if n.latency > 0 {
		timer := time.NewTimer(n.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	n.logger.Info("notification sent",
		"seq", event.Seq(),
		"type", string(event.Type()),
		"order_id", event.OrderID().String(),
		"target_user_id", event.TargetUserID().String(),
		"message", event.Message())
	return nil
}
