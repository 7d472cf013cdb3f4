package commands_test

import (
	"errors"
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createOrderCommand(t *testing.T, productID kernel.UUID) (commands.CreateOrderCommand, kernel.Actor) {
	t.Helper()

	userID := kernel.NewUUID()
	actor := customerActor(t, userID)
	input, err := commands.NewItemInput(productID, 2, nil)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), actor, userID,
		[]commands.ItemInput{input},
		order.Totals{Untaxed: 50, Total: 50},
		"leave at reception")
	require.NoError(t, err)
	return cmd, actor
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, actor := createOrderCommand(t, productID)
	catalogProduct := restoreTestProduct(t, productID, 10, 10)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	cart := new(MockCartService)
	publisher := new(MockPublisher)

	var created *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(catalogProduct, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cart.On("Clear", mock.Anything, actor.UserID()).Return(nil).Once(),
		publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("order.ChangedEvent")).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, cart, publisher, testLogger(), testClock)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, order.Quotation, result.Status())
	assert.Contains(t, result.OrderNumber(), "SO-20260120-")
	require.NotNil(t, created)
	require.Len(t, created.Items(), 1)
	// Rate snapshotted from the catalog, not supplied by the client.
	assert.InDelta(t, catalogProduct.Price(), created.Items()[0].Price(), 0.001)

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cart.AssertExpectations(t)
	publisher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CartFailureDoesNotFailOrder(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := createOrderCommand(t, productID)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	cart := new(MockCartService)
	publisher := new(MockPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(restoreTestProduct(t, productID, 10, 10), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cart.On("Clear", mock.Anything, mock.Anything).Return(errors.New("cart service down")).Once(),
		publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("order.ChangedEvent")).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, cart, publisher, testLogger(), testClock)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	cart.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := createOrderCommand(t, productID)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(nil, errs.NewObjectNotFoundError("productId", productID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory, new(MockCartService), new(MockPublisher), testLogger(), testClock)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockCreateOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(
		factory, new(MockCartService), new(MockPublisher), testLogger(), testClock)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := createOrderCommand(t, kernel.NewUUID())

	uow := new(MockUoW)
	factory := new(MockCreateOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(
		factory, new(MockCartService), new(MockPublisher), testLogger(), testClock)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
