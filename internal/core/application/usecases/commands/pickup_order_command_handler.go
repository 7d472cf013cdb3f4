package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental/internal/core/domain/model/invoice"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// PickupOrderCommandHandler handles handing rented goods to the customer.
// The order transition and the on-hand stock decrement share one transaction,
// and the invoice is re-checked inside it: an unpaid invoice aborts the pickup
// before any stock moves.
type PickupOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	publisher  ports.OrderEventPublisher
	now        func() time.Time
}

// NewPickupOrderCommandHandler creates a handler for order pickups.
func NewPickupOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	publisher ports.OrderEventPublisher,
	now func() time.Time,
) PickupOrderCommandHandler {
	return PickupOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

// Handle processes the pickup command: Paid becomes PickedUp and the on-hand
// quantity of every ordered product is decremented.
func (h *PickupOrderCommandHandler) Handle(ctx context.Context, cmd PickupOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Status().ValidatePickup(); err != nil {
		return nil, err
	}

	bill, err := uow.InvoiceRepository().GetByOrderID(ctx, aggregate.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectInvalidStateErrorWithCause(
				"order",
				aggregate.Status().String(),
				fmt.Errorf("order %s has no invoice", aggregate.OrderNumber()),
			)
		}
		return nil, err
	}
	if bill.Status() != invoice.Paid {
		return nil, errs.NewObjectInvalidStateErrorWithCause(
			"invoice",
			bill.Status().String(),
			fmt.Errorf("invoice for order %s is not paid", aggregate.OrderNumber()),
		)
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		product, prodErr := productRepo.GetForUpdate(ctx, item.ProductID())
		if prodErr != nil {
			return nil, prodErr
		}

		if prodErr = product.DecreaseOnHand(item.Quantity()); prodErr != nil {
			return nil, prodErr
		}

		if prodErr = productRepo.Update(ctx, product); prodErr != nil {
			return nil, prodErr
		}
	}

	if err = aggregate.Pickup(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishOrderChanged(ctx, order.NewChangedEvent(aggregate, h.now()))

	return aggregate, nil
}
