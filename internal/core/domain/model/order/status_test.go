package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "pending"},
			{order.Processing, "processing"},
			{order.Shipped, "shipped"},
			{order.Delivered, "delivered"},
			{order.Cancelled, "cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid wire names", func(t *testing.T) {
		testCases := map[string]order.Status{
			"pending":    order.Pending,
			"processing": order.Processing,
			"shipped":    order.Shipped,
			"delivered":  order.Delivered,
			"cancelled":  order.Cancelled,
		}

		for wire, expected := range testCases {
			status, err := order.StatusFromString(wire)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject invalid wire names", func(t *testing.T) {
		for _, wire := range []string{"", "unknown", "Pending", "SHIPPED", "completed"} {
			status, err := order.StatusFromString(wire)

			require.Error(t, err)
			assert.Equal(t, order.Unknown, status)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}

// TestStatus_TransitionTo_ExhaustiveGrid walks every (from, to) pair of the
// five lifecycle states and asserts that exactly the five legal edges
// succeed while everything else fails with ErrInvalidStatusTransition.
func TestStatus_TransitionTo_ExhaustiveGrid(t *testing.T) {
	all := []order.Status{
		order.Pending,
		order.Processing,
		order.Shipped,
		order.Delivered,
		order.Cancelled,
	}

	legal := map[order.Status][]order.Status{
		order.Pending:    {order.Processing, order.Cancelled},
		order.Processing: {order.Shipped, order.Cancelled},
		order.Shipped:    {order.Delivered},
		order.Delivered:  {},
		order.Cancelled:  {},
	}

	isLegal := func(from, to order.Status) bool {
		for _, allowed := range legal[from] {
			if allowed == to {
				return true
			}
		}
		return false
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if isLegal(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, next)
				} else {
					require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
					assert.Equal(t, order.Status(0), next)
				}
			})
		}
	}
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	t.Run("should reject Unknown as target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject out of range target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Status(9))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, order.Pending.CanTransitionTo(order.Processing))
	assert.True(t, order.Pending.CanTransitionTo(order.Cancelled))
	assert.True(t, order.Processing.CanTransitionTo(order.Shipped))
	assert.True(t, order.Processing.CanTransitionTo(order.Cancelled))
	assert.True(t, order.Shipped.CanTransitionTo(order.Delivered))

	assert.False(t, order.Pending.CanTransitionTo(order.Shipped))
	assert.False(t, order.Pending.CanTransitionTo(order.Delivered))
	assert.False(t, order.Shipped.CanTransitionTo(order.Cancelled))
	assert.False(t, order.Delivered.CanTransitionTo(order.Processing))
	assert.False(t, order.Cancelled.CanTransitionTo(order.Pending))
}
