// Package notify delivers customer notifications. The log notifier stands in
// until a real gateway (email, SMS) is wired; every notification it handles
// is already best-effort at the call sites.
package notify

import (
	"context"
	"log/slog"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
)

// LogNotifier implements ports.Notifier by writing structured log records.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs instead of delivering.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// QuotationSent records that a quotation went out to the customer.
func (n *LogNotifier) QuotationSent(ctx context.Context, o *order.Order) error {
	n.logger.InfoContext(ctx, "quotation sent to customer",
		"order_number", o.OrderNumber(),
		"user_id", o.UserID().String(),
	)
	return nil
}

// ReturnOverdue records a reminder about an overdue return.
func (n *LogNotifier) ReturnOverdue(ctx context.Context, orderNumber string, userID kernel.UUID) error {
	n.logger.InfoContext(ctx, "return overdue reminder",
		"order_number", orderNumber,
		"user_id", userID.String(),
	)
	return nil
}
