package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderLine(t *testing.T) {
	t.Run("should create valid line", func(t *testing.T) {
		productID := kernel.NewUUID()

		line, err := commands.NewOrderLine(productID, 3)

		require.NoError(t, err)
		assert.True(t, line.ProductID().IsEqual(productID))
		assert.Equal(t, 3, line.Quantity())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := commands.NewOrderLine(kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewOrderLine(kernel.NewUUID(), -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty product id", func(t *testing.T) {
		_, err := commands.NewOrderLine(kernel.UUID{}, 1)
		require.Error(t, err)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	customer := newActorWithRole(t, actor.RoleCustomer)
	line, err := commands.NewOrderLine(kernel.NewUUID(), 2)
	require.NoError(t, err)

	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(orderID, customer, []commands.OrderLine{line})

		require.NoError(t, err)
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, customer, cmd.Actor())
		assert.Len(t, cmd.Lines(), 1)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, nil)
		require.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
	})

	t.Run("should reject unconstructed line", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer,
			[]commands.OrderLine{{}})
		require.ErrorIs(t, err, commands.ErrOrderLineIsNotConstructed)
	})

	t.Run("should reject unconstructed actor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor.Actor{},
			[]commands.OrderLine{line})
		require.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.CreateOrderCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
