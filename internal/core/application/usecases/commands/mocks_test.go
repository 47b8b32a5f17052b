package commands_test

import (
	"context"
	"sync"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/notifications"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

// RecordingQueue captures enqueued events so tests can assert exactly which
// notifications a handler emitted.
type RecordingQueue struct {
	mu     sync.Mutex
	events []notifications.Event
}

func (q *RecordingQueue) Enqueue(event notifications.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	q.mu.Lock()
	q.events = append(q.events, event)
	q.mu.Unlock()
	return nil
}

func (q *RecordingQueue) Status() notifications.QueueStatus {
	q.mu.Lock()
	defer q.mu.Unlock()
	return notifications.QueueStatus{Pending: len(q.events)}
}

func (q *RecordingQueue) Events() []notifications.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]notifications.Event(nil), q.events...)
}

func newActorWithRole(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()

	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newStoredProduct(t *testing.T, price int64, stock int) *product.Product {
	t.Helper()

	p, err := product.RestoreProduct(kernel.NewUUID(), "Mechanical Keyboard", "tenkeyless", price, stock)
	require.NoError(t, err)
	return p
}

func newStoredOrder(t *testing.T, ownerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1, 4999)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), ownerID, []order.Item{item})
	require.NoError(t, err)

	for _, step := range pathTo(status) {
		require.NoError(t, o.AdvanceTo(step))
	}
	return o
}

func pathTo(status order.Status) []order.Status {
	switch status {
	case order.Processing:
		return []order.Status{order.Processing}
	case order.Shipped:
		return []order.Status{order.Processing, order.Shipped}
	case order.Delivered:
		return []order.Status{order.Processing, order.Shipped, order.Delivered}
	default:
		return nil
	}
}
