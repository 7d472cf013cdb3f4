package commands

import (
	"context"
	"sort"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// ConfirmOrderCommandHandler handles order confirmation.
//
// The availability guard and the status write share one transaction: every
// product referenced by a dated item is locked (SELECT ... FOR UPDATE) before
// the reservation ledger is read, so two concurrent confirms touching the
// same product serialize and cannot jointly over-book. Products are locked in
// ascending ID order to keep lock acquisition deadlock-free.
type ConfirmOrderCommandHandler struct {
	uowFactory ConfirmOrderUoWFactory
	publisher  ports.OrderEventPublisher
	now        func() time.Time
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	uowFactory ConfirmOrderUoWFactory,
	publisher ports.OrderEventPublisher,
	now func() time.Time,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

// Handle processes the confirmation command.
// For every dated item the guard requires
// reserved(product, period, excluding this order) + quantity <= stock,
// where reserved also counts this order's own earlier dated items of the
// same product with overlapping windows; the first violated product fails
// the whole confirmation with a stock conflict naming the product and the
// quantity still available.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Status().ValidateConfirm(); err != nil {
		return nil, err
	}

	if err = h.checkAvailability(ctx, uow, aggregate); err != nil {
		return nil, err
	}

	if err = aggregate.Confirm(); err != nil {
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

func (h *ConfirmOrderCommandHandler) checkAvailability(
	ctx context.Context,
	uow ConfirmOrderUoW,
	aggregate *order.Order,
) error {
	dated := aggregate.DatedItems()
	sort.Slice(dated, func(i, j int) bool {
		return dated[i].ProductID().String() < dated[j].ProductID().String()
	})

	productRepo := uow.ProductRepository()
	ledger := uow.InventoryLedger()
	orderID := aggregate.ID()

	// The ledger excludes this order's own lines, so items of the same
	// product within the order must count against each other here.
	claimed := make(map[kernel.UUID][]*order.Item)

	for _, item := range dated {
		product, err := productRepo.GetForUpdate(ctx, item.ProductID())
		if err != nil {
			return err
		}

		reserved, err := ledger.ReservedQuantity(ctx, product.ID(), *item.Period(), &orderID)
		if err != nil {
			return err
		}

		for _, sibling := range claimed[product.ID()] {
			if sibling.Period().Overlaps(*item.Period()) {
				reserved += sibling.Quantity()
			}
		}

		if reserved+item.Quantity() > product.Stock() {
			available := product.Stock() - reserved
			if available < 0 {
				available = 0
			}
			return errs.NewStockConflictError(product.Name(), item.Quantity(), available)
		}

		claimed[product.ID()] = append(claimed[product.ID()], item)
	}

	return nil
}
