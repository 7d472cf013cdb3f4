package commands

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/invoice"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// CreateInvoiceCommandHandler handles invoice creation for an order.
// The invoice amount is the order's total at the time of creation; the
// one-invoice-per-order invariant is checked here and additionally enforced
// by the store's unique constraint, so two concurrent creations cannot both
// succeed.
type CreateInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation.
func NewCreateInvoiceCommandHandler(uowFactory BillingUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice creation command.
// Fails with an ObjectAlreadyExistsError when the order is already billed.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	invoiceRepo := uow.InvoiceRepository()
	if _, err = invoiceRepo.GetByOrderID(ctx, aggregate.ID()); err == nil {
		return nil, errs.NewObjectAlreadyExistsError("invoice", aggregate.ID().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	bill, err := invoice.NewInvoice(kernel.NewUUID(), aggregate.ID(), aggregate.Totals().Total)
	if err != nil {
		return nil, err
	}

	if err = invoiceRepo.Add(ctx, bill); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return bill, nil
}
