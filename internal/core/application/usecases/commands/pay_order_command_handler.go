package commands

import (
	"context"
	"errors"
	"time"

	"rental/internal/core/domain/model/invoice"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// PayOrderCommandHandler handles payment recording.
// The order and its invoice flip to Paid in one transaction so the two
// records are never left inconsistent: a paid invoice is the prerequisite
// the pickup operation later double-checks.
type PayOrderCommandHandler struct {
	uowFactory BillingUoWFactory
	publisher  ports.OrderEventPublisher
	now        func() time.Time
}

// NewPayOrderCommandHandler creates a handler for payment recording.
// The now function stamps the invoice's payment date.
func NewPayOrderCommandHandler(
	uowFactory BillingUoWFactory,
	publisher ports.OrderEventPublisher,
	now func() time.Time,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

// Handle processes the payment command.
// Fails with a state error when the order is not confirmed, its invoice is
// missing, or the invoice is already paid.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, *invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}

	if !cmd.Actor().Role().IsStaff() && !aggregate.UserID().IsEqual(cmd.Actor().UserID()) {
		return nil, nil, ErrActorNotAllowed
	}

	invoiceRepo := uow.InvoiceRepository()
	bill, err := invoiceRepo.GetByOrderID(ctx, aggregate.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil, errs.NewObjectInvalidStateErrorWithCause(
				"order", aggregate.Status().String(), errors.New("order has no invoice to pay"))
		}
		return nil, nil, err
	}

	if err = bill.MarkPaid(cmd.Method(), h.now()); err != nil {
		return nil, nil, err
	}
	if err = aggregate.MarkPaid(); err != nil {
		return nil, nil, err
	}

	if err = invoiceRepo.Update(ctx, bill); err != nil {
		return nil, nil, err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	h.publisher.PublishOrderChanged(ctx, order.NewChangedEvent(aggregate, h.now()))

	return aggregate, bill, nil
}
