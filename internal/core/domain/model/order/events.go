package order

import (
	"time"

	"rental/internal/core/domain/model/kernel"
)

// ChangedEvent announces a committed order status change.
// Events are emitted after the transaction commits, best-effort.
type ChangedEvent struct {
	OrderID     kernel.UUID
	OrderNumber string
	UserID      kernel.UUID
	Status      Status
	LateFee     float64
	OccurredAt  time.Time
}

// NewChangedEvent captures the order's current state as an event.
func NewChangedEvent(o *Order, occurredAt time.Time) ChangedEvent {
	return ChangedEvent{
		OrderID:     o.ID(),
		OrderNumber: o.OrderNumber(),
		UserID:      o.UserID(),
		Status:      o.Status(),
		LateFee:     o.LateFee(),
		OccurredAt:  occurredAt,
	}
}
