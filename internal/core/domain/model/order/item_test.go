package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		productID := kernel.NewUUID()

		item, err := order.NewItem(productID, 3, 1250)

		require.NoError(t, err)
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, int64(1250), item.UnitPrice())
		require.NoError(t, item.Validate())
	})

	t.Run("should allow zero price", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), 1, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), item.UnitPrice())
	})

	t.Run("should reject invalid product id", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, 1, 100)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := order.NewItem(kernel.NewUUID(), qty, 100)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), 1, -5)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestItem_Total(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), 4, 750)
	require.NoError(t, err)

	assert.Equal(t, int64(3000), item.Total())
}
