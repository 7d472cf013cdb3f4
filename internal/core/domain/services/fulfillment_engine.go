package services

import (
	"math"
	"time"

	"rental/internal/core/domain/model/order"
)

// FulfillmentEngine is a domain service that settles an order at return time.
// It charges a per-day penalty for every item returned after its committed
// end date, using each item's immutable rate snapshot.
//
// Business rules:
//   - Only items with a rental period can be overdue
//   - Any fraction of a day late counts as a full late day
//   - Fee contribution per item = price x quantity x whole days late
//   - Items returned on time contribute zero
type FulfillmentEngine struct{}

// NewFulfillmentEngine creates a new FulfillmentEngine instance.
func NewFulfillmentEngine() FulfillmentEngine {
	return FulfillmentEngine{}
}

// LateFee computes the total late fee for returning the order at the given
// time. The fee is stored on the order by the Return transition; no follow-up
// invoice is raised for it.
func (e FulfillmentEngine) LateFee(o *order.Order, returnedAt time.Time) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	var total float64
	for _, item := range o.Items() {
		total += e.itemLateFee(item, returnedAt)
	}

	return total, nil
}

// itemLateFee computes one item's contribution. Items without a rental
// period or returned on or before their end date are never overdue.
func (e FulfillmentEngine) itemLateFee(item *order.Item, returnedAt time.Time) float64 {
	period := item.Period()
	if period == nil || !returnedAt.After(period.End()) {
		return 0
	}

	daysLate := math.Ceil(returnedAt.Sub(period.End()).Hours() / 24)
	return item.Price() * float64(item.Quantity()) * daysLate
}
