package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/invoice"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/product"
	"rental/internal/core/ports"

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

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, bill *invoice.Invoice) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, bill *invoice.Invoice) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockInventoryLedger struct{ mock.Mock }

func (m *MockInventoryLedger) ReservedQuantity(
	ctx context.Context,
	productID kernel.UUID,
	period kernel.DateRange,
	excludeOrderID *kernel.UUID,
) (int, error) {
	args := m.Called(ctx, productID, period, excludeOrderID)
	return args.Int(0), args.Error(1)
}

// MockUoW satisfies every unit-of-work shape used by the handlers.
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

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) InventoryLedger() ports.InventoryLedger {
	args := m.Called()
	return args.Get(0).(ports.InventoryLedger)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockConfirmOrderUoWFactory struct{ mock.Mock }

func (m *MockConfirmOrderUoWFactory) Create() commands.ConfirmOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ConfirmOrderUoW)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockCartService struct{ mock.Mock }

func (m *MockCartService) Clear(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) QuotationSent(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) ReturnOverdue(ctx context.Context, orderNumber string, userID kernel.UUID) error {
	args := m.Called(ctx, orderNumber, userID)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishOrderChanged(ctx context.Context, e order.ChangedEvent) {
	m.Called(ctx, e)
}

// Shared test fixtures.

var testClock = func() time.Time {
	return time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func staffActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleVendor)
	require.NoError(t, err)
	return actor
}

func customerActor(t *testing.T, userID kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(userID, kernel.RoleCustomer)
	require.NoError(t, err)
	return actor
}

func testPeriod(t *testing.T, start, end time.Time) *kernel.DateRange {
	t.Helper()
	period, err := kernel.NewDateRange(start, end)
	require.NoError(t, err)
	return &period
}

// restoreTestOrder builds an order in the given status with a single dated
// item for the given product.
func restoreTestOrder(
	t *testing.T,
	status order.Status,
	productID kernel.UUID,
	quantity int,
	period *kernel.DateRange,
) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), productID, quantity, 10.0, period)
	require.NoError(t, err)

	id := kernel.NewUUID()
	o, err := order.RestoreOrder(
		id,
		order.GenerateOrderNumber(testClock(), id),
		kernel.NewUUID(),
		[]*order.Item{item},
		status,
		order.Totals{Untaxed: 100, Total: 100},
		0,
		"",
	)
	require.NoError(t, err)
	return o
}

func restoreTestProduct(t *testing.T, id kernel.UUID, stock, onHand int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, "Party Tent", stock, onHand, 10.0)
	require.NoError(t, err)
	return p
}
