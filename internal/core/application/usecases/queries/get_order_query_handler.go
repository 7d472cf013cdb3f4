package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its lines straight from the
// database, bypassing the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// exists under the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id, userID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			user_id,
			status,
			untaxed,
			tax,
			discount,
			shipping,
			total,
			late_fee,
			note
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&userID,
		&status,
		&resp.Untaxed,
		&resp.Tax,
		&resp.Discount,
		&resp.Shipping,
		&resp.Total,
		&resp.LateFee,
		&resp.Note,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"orderId", query.OrderID().String(),
			)
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			price,
			start_date,
			end_date
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItemResponse
		var itemID, productID uuid.UUID
		var startDate, endDate *time.Time

		err = rows.Scan(
			&itemID,
			&productID,
			&item.Quantity,
			&item.Price,
			&startDate,
			&endDate,
		)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		item.StartDate = startDate
		item.EndDate = endDate

		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
