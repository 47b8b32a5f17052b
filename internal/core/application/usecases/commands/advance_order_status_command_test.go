package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderStatusCommand(t *testing.T) {
	manager := newActorWithRole(t, actor.RoleManager)

	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, order.Processing, manager)

		require.NoError(t, err)
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Processing, cmd.NewStatus())
		assert.Equal(t, manager, cmd.Actor())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(kernel.NewUUID(), order.Unknown, manager)
		require.Error(t, err)
	})

	t.Run("should reject empty order id", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(kernel.UUID{}, order.Processing, manager)
		require.Error(t, err)
	})

	t.Run("should reject unconstructed actor", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(kernel.NewUUID(), order.Processing, actor.Actor{})
		require.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.AdvanceOrderStatusCommand{}
		require.ErrorIs(t, cmd.Validate(),
			commands.ErrAdvanceOrderStatusCommandIsNotConstructed)
	})
}
