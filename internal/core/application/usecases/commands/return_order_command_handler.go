package commands

import (
	"context"
	"time"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
)

// ReturnOrderCommandHandler handles taking rented goods back from the customer.
// The status transition, the late fee assessment and the on-hand stock
// increment all commit in one transaction.
type ReturnOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	engine     services.FulfillmentEngine
	publisher  ports.OrderEventPublisher
	now        func() time.Time
}

// NewReturnOrderCommandHandler creates a handler for order returns.
func NewReturnOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	engine services.FulfillmentEngine,
	publisher ports.OrderEventPublisher,
	now func() time.Time,
) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		publisher:  publisher,
		now:        now,
	}
}

// Handle processes the return command: PickedUp becomes Returned, overdue
// items accrue a late fee and stock goes back on hand.
func (h *ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) (*order.Order, error) {
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

	lateFee, err := h.engine.LateFee(aggregate, h.now())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Return(lateFee); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		product, prodErr := productRepo.GetForUpdate(ctx, item.ProductID())
		if prodErr != nil {
			return nil, prodErr
		}

		if prodErr = product.IncreaseOnHand(item.Quantity()); prodErr != nil {
			return nil, prodErr
		}

		if prodErr = productRepo.Update(ctx, product); prodErr != nil {
			return nil, prodErr
		}
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
