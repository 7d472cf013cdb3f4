package commands

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Snapshots item prices from the catalog, generates the order number, and
// persists the order in Quotation status. When the order is created for the
// acting user, their cart is cleared best-effort after commit.
type CreateOrderCommandHandler struct {
	uowFactory  CreateOrderUoWFactory
	cartService ports.CartService
	publisher   ports.OrderEventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// The now function supplies the creation timestamp used by the order number.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	cartService ports.CartService,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	now func() time.Time,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		cartService: cartService,
		publisher:   publisher,
		logger:      logger.With("component", "create_order_handler"),
		now:         now,
	}
}

// Handle processes the order creation command.
// Each requested item is priced from the current catalog rate; the resulting
// snapshot never changes afterwards. The whole creation commits atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	productRepo := uow.ProductRepository()
	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		product, err := productRepo.Get(ctx, input.ProductID())
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(kernel.NewUUID(), product.ID(), input.Quantity(), product.Price(), input.Period())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	createdAt := h.now()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		order.GenerateOrderNumber(createdAt, cmd.OrderID()),
		cmd.UserID(),
		items,
		cmd.Totals(),
		cmd.Note(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.clearCartBestEffort(ctx, cmd)
	h.publisher.PublishOrderChanged(ctx, order.NewChangedEvent(aggregate, createdAt))

	return aggregate, nil
}

// clearCartBestEffort empties the acting user's cart after a self-service
// creation. Failures are logged and never fail the committed creation.
func (h *CreateOrderCommandHandler) clearCartBestEffort(ctx context.Context, cmd CreateOrderCommand) {
	if !cmd.UserID().IsEqual(cmd.Actor().UserID()) {
		return
	}

	if err := h.cartService.Clear(ctx, cmd.UserID()); err != nil {
		h.logger.WarnContext(ctx, "failed to clear cart after order creation",
			"user_id", cmd.UserID().String(), "error", err)
	}
}
