package commands

import (
	"context"

	"rental/internal/core/domain/model/invoice"
)

// VoidInvoiceCommandHandler handles cancelling invoices. Voiding does not
// touch the order: a replacement invoice can be issued afterwards only if the
// order still allows it.
type VoidInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewVoidInvoiceCommandHandler creates a handler for invoice voiding.
func NewVoidInvoiceCommandHandler(uowFactory BillingUoWFactory) VoidInvoiceCommandHandler {
	return VoidInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the void command.
func (h *VoidInvoiceCommandHandler) Handle(ctx context.Context, cmd VoidInvoiceCommand) (*invoice.Invoice, error) {
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

	invoiceRepo := uow.InvoiceRepository()
	bill, err := invoiceRepo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return nil, err
	}

	bill.Void()

	if err = invoiceRepo.Update(ctx, bill); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return bill, nil
}
