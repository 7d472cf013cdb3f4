package queries

import (
	"context"
	"database/sql"
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

// AvailabilityCache caches availability answers for a short window. A miss or
// a nil cache falls through to the database; answers are advisory either way,
// so staleness within the TTL is acceptable.
type AvailabilityCache interface {
	Get(ctx context.Context, productID kernel.UUID, period kernel.DateRange) (CheckAvailabilityQueryResponse, bool)
	Set(ctx context.Context, productID kernel.UUID, period kernel.DateRange, resp CheckAvailabilityQueryResponse)
}

// CheckAvailabilityQueryHandler computes product availability straight from
// the order tables, counting every reserving order whose item period overlaps
// the requested one.
type CheckAvailabilityQueryHandler struct {
	db    *gorm.DB
	cache AvailabilityCache
}

// NewCheckAvailabilityQueryHandler creates a handler for availability checks.
// The cache may be nil, in which case every check hits the database.
func NewCheckAvailabilityQueryHandler(db *gorm.DB, cache AvailabilityCache) CheckAvailabilityQueryHandler {
	return CheckAvailabilityQueryHandler{db: db, cache: cache}
}

// Handle executes the availability check.
// Overlap is inclusive on both ends: periods sharing a single day collide.
func (h CheckAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckAvailabilityQuery,
) (CheckAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckAvailabilityQueryResponse{}, err
	}

	if h.cache != nil {
		if resp, ok := h.cache.Get(ctx, query.ProductID(), query.Period()); ok {
			return resp, nil
		}
	}

	var totalStock int
	row := h.db.WithContext(ctx).Raw(`
		SELECT stock
		FROM products
		WHERE id = ?
	`, query.ProductID().String()).Row()
	if err := row.Scan(&totalStock); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CheckAvailabilityQueryResponse{}, errs.NewObjectNotFoundError(
				"productId", query.ProductID().String(),
			)
		}
		return CheckAvailabilityQueryResponse{}, err
	}

	var reserved int
	row = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE oi.product_id = ?
		  AND o.status IN (?, ?, ?)
		  AND oi.start_date IS NOT NULL
		  AND oi.end_date IS NOT NULL
		  AND oi.start_date <= ?
		  AND oi.end_date >= ?
	`,
		query.ProductID().String(),
		order.SalesOrder, order.Paid, order.PickedUp,
		query.Period().End(), query.Period().Start(),
	).Row()
	if err := row.Scan(&reserved); err != nil {
		return CheckAvailabilityQueryResponse{}, err
	}

	available := totalStock - reserved
	if available < 0 {
		available = 0
	}

	resp := CheckAvailabilityQueryResponse{
		ProductID:  query.ProductID(),
		TotalStock: totalStock,
		Reserved:   reserved,
		Available:  available,
	}

	if h.cache != nil {
		h.cache.Set(ctx, query.ProductID(), query.Period(), resp)
	}

	return resp, nil
}
