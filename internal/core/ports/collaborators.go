package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
)

// CartService is the external cart collaborator. The cart is cleared when an
// order is created for the acting user; clearing is best-effort and its
// failure never fails the parent operation.
type CartService interface {
	// Clear empties the user's cart.
	Clear(ctx context.Context, userID kernel.UUID) error
}

// Notifier delivers customer-facing notifications. Notification gateways
// (email, SMS) are external collaborators; delivery is best-effort, happens
// after commit, and never rolls back committed state.
type Notifier interface {
	// QuotationSent notifies the customer that their quotation went out.
	QuotationSent(ctx context.Context, o *order.Order) error

	// ReturnOverdue reminds the customer that a picked-up order has passed
	// its committed end date.
	ReturnOverdue(ctx context.Context, orderNumber string, userID kernel.UUID) error
}

// OrderEventPublisher announces committed order state changes to downstream
// consumers. Publishing is best-effort: implementations log failures
// internally and must never block or fail the calling operation.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an event for an order whose status change
	// has already been committed.
	PublishOrderChanged(ctx context.Context, e order.ChangedEvent)
}
