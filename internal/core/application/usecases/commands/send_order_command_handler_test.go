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

func TestSendOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.Quotation, kernel.NewUUID(), 1, nil)
	cmd, err := commands.NewSendOrderCommand(aggregate.ID(), staffActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	publisher := new(MockPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("QuotationSent", mock.Anything, aggregate).Return(nil).Once(),
		publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("order.ChangedEvent")).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendOrderCommandHandler(factory, notifier, publisher, testLogger(), testClock)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.QuotationSent, result.Status())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	publisher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSendOrderCommandHandler_Handle_NotificationFailureDoesNotFailSend(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.Quotation, kernel.NewUUID(), 1, nil)
	cmd, err := commands.NewSendOrderCommand(aggregate.ID(), staffActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	publisher := new(MockPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("QuotationSent", mock.Anything, aggregate).
			Return(errors.New("smtp unreachable")).Once(),
		publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("order.ChangedEvent")).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendOrderCommandHandler(factory, notifier, publisher, testLogger(), testClock)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.QuotationSent, result.Status())
	notifier.AssertExpectations(t)
}

func TestSendOrderCommandHandler_Handle_AlreadySent(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.QuotationSent, kernel.NewUUID(), 1, nil)
	cmd, err := commands.NewSendOrderCommand(aggregate.ID(), staffActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendOrderCommandHandler(
		factory, new(MockNotifier), new(MockPublisher), testLogger(), testClock)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectInvalidState)
	assert.Contains(t, err.Error(), "only a Quotation can be sent")
}

func TestSendOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SendOrderCommand{} // not constructed properly

	h := commands.NewSendOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockNotifier), new(MockPublisher), testLogger(), testClock)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
