package commands_test

import (
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/invoice"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.SalesOrder, kernel.NewUUID(), 1, nil)
	cmd, err := commands.NewCreateInvoiceCommand(aggregate.ID(), staffActor(t), "card")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderId", aggregate.ID().String())).Once(),
		invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory)
	bill, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, bill)
	assert.Equal(t, invoice.Unpaid, bill.Status())
	assert.Equal(t, aggregate.ID(), bill.OrderID())
	// The invoice bills the order's total at creation time.
	assert.InDelta(t, aggregate.Totals().Total, bill.Amount(), 0.001)

	orderRepo.AssertExpectations(t)
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_DuplicateInvoice(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.SalesOrder, kernel.NewUUID(), 1, nil)
	existing, err := invoice.NewInvoice(kernel.NewUUID(), aggregate.ID(), aggregate.Totals().Total)
	require.NoError(t, err)
	cmd, err := commands.NewCreateInvoiceCommand(aggregate.ID(), staffActor(t), "card")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(orderID, staffActor(t), "card")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateInvoiceCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateInvoiceCommand{} // not constructed properly

	h := commands.NewCreateInvoiceCommandHandler(new(MockBillingUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
