package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
)

// InventoryLedger answers how many units of a product are already committed
// to other orders for a rental period. A unit is committed when it belongs to
// a line item whose parent order is in a reserving status (SalesOrder, Paid,
// PickedUp) and whose own period overlaps the requested one, boundaries
// inclusive. Non-dated items never count.
//
// Implementations must evaluate the sum inside the caller's transaction so a
// confirmation's guard and status write observe the same committed state.
type InventoryLedger interface {
	// ReservedQuantity sums the quantities reserving the product over the
	// period. Items belonging to excludeOrderID are skipped, so an order can
	// be re-evaluated against itself during confirmation without
	// self-conflicting; pass nil to count everything.
	ReservedQuantity(
		ctx context.Context,
		productID kernel.UUID,
		period kernel.DateRange,
		excludeOrderID *kernel.UUID,
	) (int, error)
}
