package commands

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
)

// SendOrderCommandHandler handles sending a quotation to its customer.
// The status transition commits first; the customer notification is delivered
// best-effort afterwards and never rolls back the committed transition.
type SendOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewSendOrderCommandHandler creates a handler for quotation sending.
func NewSendOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	now func() time.Time,
) SendOrderCommandHandler {
	return SendOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		publisher:  publisher,
		logger:     logger.With("component", "send_order_handler"),
		now:        now,
	}
}

// Handle processes the send command: Quotation becomes QuotationSent.
func (h *SendOrderCommandHandler) Handle(ctx context.Context, cmd SendOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Send(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.QuotationSent(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "failed to notify customer about sent quotation",
			"order_number", aggregate.OrderNumber(), "error", err)
	}
	h.publisher.PublishOrderChanged(ctx, order.NewChangedEvent(aggregate, h.now()))

	return aggregate, nil
}
