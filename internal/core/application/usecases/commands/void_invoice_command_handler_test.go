package commands_test

import (
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/invoice"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVoidInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	bill, err := invoice.NewInvoice(kernel.NewUUID(), kernel.NewUUID(), 100)
	require.NoError(t, err)
	cmd, err := commands.NewVoidInvoiceCommand(bill.ID(), staffActor(t))
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Get", mock.Anything, bill.ID()).Return(bill, nil).Once(),
		invoiceRepo.On("Update", mock.Anything, bill).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVoidInvoiceCommandHandler(factory)
	voided, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, invoice.Void, voided.Status())

	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestVoidInvoiceCommandHandler_Handle_VoidsPaidInvoice(t *testing.T) {
	ctx := t.Context()
	bill, err := invoice.NewInvoice(kernel.NewUUID(), kernel.NewUUID(), 100)
	require.NoError(t, err)
	require.NoError(t, bill.MarkPaid("card", testClock()))
	cmd, err := commands.NewVoidInvoiceCommand(bill.ID(), staffActor(t))
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Get", mock.Anything, bill.ID()).Return(bill, nil).Once(),
		invoiceRepo.On("Update", mock.Anything, bill).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVoidInvoiceCommandHandler(factory)
	voided, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, invoice.Void, voided.Status())
}

func TestVoidInvoiceCommandHandler_Handle_InvoiceNotFound(t *testing.T) {
	ctx := t.Context()
	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewVoidInvoiceCommand(invoiceID, staffActor(t))
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Get", mock.Anything, invoiceID).
			Return(nil, errs.NewObjectNotFoundError("invoice", invoiceID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVoidInvoiceCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestVoidInvoiceCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.VoidInvoiceCommand{} // not constructed properly

	h := commands.NewVoidInvoiceCommandHandler(new(MockBillingUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
