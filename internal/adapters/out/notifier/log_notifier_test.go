package notifier_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/adapters/out/notifier"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/notifications"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewLogNotifier(t *testing.T) {
	t.Run("should create valid notifier", func(t *testing.T) {
		n, err := notifier.NewLogNotifier(0, slog.Default())

		require.NoError(t, err)
		require.NoError(t, n.Validate())
	})

	t.Run("should reject negative latency", func(t *testing.T) {
		_, err := notifier.NewLogNotifier(-time.Millisecond, slog.Default())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject nil logger", func(t *testing.T) {
		_, err := notifier.NewLogNotifier(0, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestLogNotifier_Dispatch(t *testing.T) {
	t.Run("should deliver a valid event", func(t *testing.T) {
		n, err := notifier.NewLogNotifier(0, slog.Default())
		require.NoError(t, err)

		event, err := notifications.NewOrderCreatedEvent(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		require.NoError(t, n.Dispatch(context.Background(), event))
	})

	t.Run("should reject an unconstructed event", func(t *testing.T) {
		n, err := notifier.NewLogNotifier(0, slog.Default())
		require.NoError(t, err)

		err = n.Dispatch(context.Background(), notifications.Event{})

		require.ErrorIs(t, err, notifications.ErrEventIsNotConstructed)
	})

	t.Run("should abort the latency wait on cancelled context", func(t *testing.T) {
		n, err := notifier.NewLogNotifier(time.Minute, slog.Default())
		require.NoError(t, err)

		event, err := notifications.NewOrderCreatedEvent(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err = n.Dispatch(ctx, event)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("zero value notifier fails validation", func(t *testing.T) {
		var n notifier.LogNotifier
		require.ErrorIs(t, n.Validate(), notifier.ErrLogNotifierIsNotConstructed)
	})
}
