package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items for display.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the read model of an order.
type GetOrderQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	UserID      kernel.UUID
	Status      string
	Untaxed     float64
	Tax         float64
	Discount    float64
	Shipping    float64
	Total       float64
	LateFee     float64
	Note        string
	Items       []GetOrderQueryItemResponse
}

// GetOrderQueryItemResponse is the read model of one order line.
type GetOrderQueryItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	Price     float64
	StartDate *time.Time
	EndDate   *time.Time
}
