package queries

import (
	"context"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler finds picked-up orders with at least one line
// whose rental period ended before the query's reference time.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue-order queries.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query. An order appears once with the earliest end date
// among its overdue lines.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.user_id,
			MIN(oi.end_date) AS due_date
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.status = ?
		  AND oi.end_date IS NOT NULL
		  AND oi.end_date < ?
		GROUP BY o.id, o.order_number, o.user_id
		ORDER BY due_date
	`, order.PickedUp, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueOrdersQueryResponse
		var id, userID uuid.UUID
		var dueDate time.Time

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&userID,
			&dueDate,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		resp.DueDate = dueDate

		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
