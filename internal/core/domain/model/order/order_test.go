package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(t *testing.T) []order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 2, 1999)
	require.NoError(t, err)
	return []order.Item{item}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in pending status", func(t *testing.T) {
		id := kernel.NewUUID()
		owner := kernel.NewUUID()

		o, err := order.NewOrder(id, owner, makeItems(t))

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.OwnerID().IsEqual(owner))
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Items(), 1)
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
		require.NoError(t, o.Validate())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), makeItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject invalid owner", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, makeItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should reject items not built via NewItem", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{{}})

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
		assert.Nil(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with persisted status", func(t *testing.T) {
		createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t), order.Shipped, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t), order.Unknown, time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t))
		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AdvanceTo(t *testing.T) {
	t.Run("should walk the happy path to delivered", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t))
		require.NoError(t, err)

		require.NoError(t, o.AdvanceTo(order.Processing))
		require.NoError(t, o.AdvanceTo(order.Shipped))
		require.NoError(t, o.AdvanceTo(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should cancel a pending order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t))
		require.NoError(t, err)

		require.NoError(t, o.AdvanceTo(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should leave status unchanged on illegal edge", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), makeItems(t), order.Delivered, time.Now().UTC())
		require.NoError(t, err)

		err = o.AdvanceTo(order.Processing)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should not skip processing", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t))
		require.NoError(t, err)

		err = o.AdvanceTo(order.Shipped)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Ownership(t *testing.T) {
	owner := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), owner, makeItems(t))
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(owner))
	assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
}

func TestOrder_Items_Immutability(t *testing.T) {
	itemA, err := order.NewItem(kernel.NewUUID(), 1, 500)
	require.NoError(t, err)
	itemB, err := order.NewItem(kernel.NewUUID(), 3, 250)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{itemA, itemB})
	require.NoError(t, err)

	items := o.Items()
	items[0] = itemB

	// Mutating the returned slice must not affect the aggregate.
	assert.True(t, o.Items()[0].ProductID().IsEqual(itemA.ProductID()))
}

func TestOrder_Total(t *testing.T) {
	itemA, err := order.NewItem(kernel.NewUUID(), 2, 1999)
	require.NoError(t, err)
	itemB, err := order.NewItem(kernel.NewUUID(), 1, 500)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{itemA, itemB})
	require.NoError(t, err)

	assert.Equal(t, int64(2*1999+500), o.Total())
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := order.NewOrder(id, kernel.NewUUID(), makeItems(t))
	require.NoError(t, err)
	b, err := order.RestoreOrder(id, kernel.NewUUID(), makeItems(t), order.Processing, time.Now().UTC())
	require.NoError(t, err)
	c, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t))
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func TestNewOrder_RejectsDuplicateProductLines(t *testing.T) {
	productID := kernel.NewUUID()
	first, err := order.NewItem(productID, 1, 1000)
	require.NoError(t, err)
	second, err := order.NewItem(productID, 2, 1000)
	require.NoError(t, err)

	_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{first, second})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
