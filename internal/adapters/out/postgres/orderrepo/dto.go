// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and are loaded together with the header;
// the status index serves the reservation ledger and the overdue query.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"size:32;uniqueIndex"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Status      int       `gorm:"index"`
	Untaxed     float64
	Tax         float64
	Discount    float64
	Shipping    float64
	Total       float64
	LateFee     float64
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. StartDate and EndDate are nil for
// items without a rental period; such items never enter availability sums.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	Price     float64
	StartDate *time.Time
	EndDate   *time.Time
}

// TableName overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var startDate, endDate *time.Time
		if period := item.Period(); period != nil {
			start, end := period.Start(), period.End()
			startDate, endDate = &start, &end
		}

		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			StartDate: startDate,
			EndDate:   endDate,
		})
	}

	totals := aggregate.Totals()
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		UserID:      aggregate.UserID().Bytes(),
		Status:      int(aggregate.Status()),
		Untaxed:     totals.Untaxed,
		Tax:         totals.Tax,
		Discount:    totals.Discount,
		Shipping:    totals.Shipping,
		Total:       totals.Total,
		LateFee:     aggregate.LateFee(),
		Note:        aggregate.Note(),
		Items:       items,
	}
}

// toDomain converts a database DTO back to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		userID,
		items,
		order.Status(dto.Status),
		order.Totals{
			Untaxed:  dto.Untaxed,
			Tax:      dto.Tax,
			Discount: dto.Discount,
			Shipping: dto.Shipping,
			Total:    dto.Total,
		},
		dto.LateFee,
		dto.Note,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var period *kernel.DateRange
	if dto.StartDate != nil && dto.EndDate != nil {
		rng, rangeErr := kernel.NewDateRange(*dto.StartDate, *dto.EndDate)
		if rangeErr != nil {
			return nil, rangeErr
		}
		period = &rng
	}

	return order.RestoreItem(id, productID, dto.Quantity, dto.Price, period)
}
