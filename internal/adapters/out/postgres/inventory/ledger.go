// Package inventory computes reserved quantities from the order tables.
// There is no separate reservation table: an order in a reserving status is
// the reservation, so the ledger is a sum over order lines.
package inventory

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormInventoryLedger implements InventoryLedger with a raw aggregate query.
// It runs on the transaction handle of the surrounding unit of work, so a
// confirm sees the ledger under the product row locks it already holds.
type GormInventoryLedger struct {
	db *gorm.DB
}

// NewGormInventoryLedger creates a ledger bound to the given connection.
func NewGormInventoryLedger(db *gorm.DB) *GormInventoryLedger {
	return &GormInventoryLedger{db: db}
}

// ReservedQuantity sums the quantities of every order line that reserves the
// product over a period overlapping the given one. Overlap is inclusive on
// both ends. Lines without a rental period never reserve. When excludeOrderID
// is set, that order's own lines are left out so re-checking an order does
// not count it against itself.
func (l *GormInventoryLedger) ReservedQuantity(
	ctx context.Context,
	productID kernel.UUID,
	period kernel.DateRange,
	excludeOrderID *kernel.UUID,
) (int, error) {
	query := `
		SELECT COALESCE(SUM(oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE oi.product_id = ?
		  AND o.status IN (?, ?, ?)
		  AND oi.start_date IS NOT NULL
		  AND oi.end_date IS NOT NULL
		  AND oi.start_date <= ?
		  AND oi.end_date >= ?
	`
	args := []any{
		productID.Bytes(),
		order.SalesOrder, order.Paid, order.PickedUp,
		period.End(), period.Start(),
	}

	if excludeOrderID != nil {
		query += ` AND oi.order_id != ?`
		args = append(args, excludeOrderID.Bytes())
	}

	var reserved int
	row := l.db.WithContext(ctx).Raw(query, args...).Row()
	if err := row.Scan(&reserved); err != nil {
		return 0, err
	}

	return reserved, nil
}
