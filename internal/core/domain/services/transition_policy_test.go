package services_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func newOrderOwnedBy(t *testing.T, ownerID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1, 999)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), ownerID, []order.Item{item})
	require.NoError(t, err)
	return o
}

func newActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()

	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func TestTransitionPolicy_AuthorizeCreate(t *testing.T) {
	policy := services.NewTransitionPolicy()

	t.Run("customer may create orders", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeCreate(newActor(t, actor.RoleCustomer)))
	})

	t.Run("staff may not create orders", func(t *testing.T) {
		require.ErrorIs(t, policy.AuthorizeCreate(newActor(t, actor.RoleManager)), services.ErrActorNotAllowed)
		require.ErrorIs(t, policy.AuthorizeCreate(newActor(t, actor.RoleAdmin)), services.ErrActorNotAllowed)
	})

	t.Run("unconstructed actor fails validation", func(t *testing.T) {
		require.ErrorIs(t, policy.AuthorizeCreate(actor.Actor{}), actor.ErrActorIsNotConstructed)
	})
}

// TestTransitionPolicy_AuthorizeTransition_RoleMatrix checks every role
// against fulfilment and cancellation targets.
func TestTransitionPolicy_AuthorizeTransition_RoleMatrix(t *testing.T) {
	policy := services.NewTransitionPolicy()

	fulfilmentTargets := []order.Status{order.Processing, order.Shipped, order.Delivered}

	t.Run("fulfilment edges are staff only", func(t *testing.T) {
		o := newOrderOwnedBy(t, kernel.NewUUID())

		for _, target := range fulfilmentTargets {
			t.Run(fmt.Sprintf("to %s", target), func(t *testing.T) {
				require.NoError(t, policy.AuthorizeTransition(newActor(t, actor.RoleManager), o, target))
				require.NoError(t, policy.AuthorizeTransition(newActor(t, actor.RoleAdmin), o, target))
				require.ErrorIs(t,
					policy.AuthorizeTransition(newActor(t, actor.RoleCustomer), o, target),
					services.ErrActorNotAllowed)
			})
		}
	})

	t.Run("owner may cancel their own order", func(t *testing.T) {
		ownerID := kernel.NewUUID()
		owner, err := actor.NewActor(ownerID, actor.RoleCustomer)
		require.NoError(t, err)
		o := newOrderOwnedBy(t, ownerID)

		require.NoError(t, policy.AuthorizeTransition(owner, o, order.Cancelled))
	})

	t.Run("customer may not cancel someone else's order", func(t *testing.T) {
		o := newOrderOwnedBy(t, kernel.NewUUID())

		err := policy.AuthorizeTransition(newActor(t, actor.RoleCustomer), o, order.Cancelled)

		require.ErrorIs(t, err, services.ErrActorNotAllowed)
	})

	t.Run("staff may cancel any order", func(t *testing.T) {
		o := newOrderOwnedBy(t, kernel.NewUUID())

		require.NoError(t, policy.AuthorizeTransition(newActor(t, actor.RoleManager), o, order.Cancelled))
		require.NoError(t, policy.AuthorizeTransition(newActor(t, actor.RoleAdmin), o, order.Cancelled))
	})

	t.Run("owner role does not grant fulfilment edges", func(t *testing.T) {
		ownerID := kernel.NewUUID()
		owner, err := actor.NewActor(ownerID, actor.RoleCustomer)
		require.NoError(t, err)
		o := newOrderOwnedBy(t, ownerID)

		err = policy.AuthorizeTransition(owner, o, order.Shipped)

		require.ErrorIs(t, err, services.ErrActorNotAllowed)
	})
}

func TestTransitionPolicy_AuthorizeRead(t *testing.T) {
	policy := services.NewTransitionPolicy()

	t.Run("owner may read", func(t *testing.T) {
		ownerID := kernel.NewUUID()
		owner, err := actor.NewActor(ownerID, actor.RoleCustomer)
		require.NoError(t, err)

		require.NoError(t, policy.AuthorizeRead(owner, newOrderOwnedBy(t, ownerID)))
	})

	t.Run("staff may read any order", func(t *testing.T) {
		o := newOrderOwnedBy(t, kernel.NewUUID())

		require.NoError(t, policy.AuthorizeRead(newActor(t, actor.RoleManager), o))
		require.NoError(t, policy.AuthorizeRead(newActor(t, actor.RoleAdmin), o))
	})

	t.Run("foreign customer may not read", func(t *testing.T) {
		o := newOrderOwnedBy(t, kernel.NewUUID())

		err := policy.AuthorizeRead(newActor(t, actor.RoleCustomer), o)

		require.ErrorIs(t, err, services.ErrActorNotAllowed)
	})
}

func TestTransitionPolicy_AuthorizeCatalogManagement(t *testing.T) {
	policy := services.NewTransitionPolicy()

	require.NoError(t, policy.AuthorizeCatalogManagement(newActor(t, actor.RoleAdmin)))
	require.ErrorIs(t,
		policy.AuthorizeCatalogManagement(newActor(t, actor.RoleManager)), services.ErrActorNotAllowed)
	require.ErrorIs(t,
		policy.AuthorizeCatalogManagement(newActor(t, actor.RoleCustomer)), services.ErrActorNotAllowed)
}
