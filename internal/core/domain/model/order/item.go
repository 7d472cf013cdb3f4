package order

import (
	"errors"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a line item owned exclusively by one Order. It reserves a quantity
// of a product for an optional rental period. The price is a rate snapshot
// captured at order-creation time and never follows later catalog changes.
//
// Items without a rental period (services, accessories sold alongside the
// rental) do not participate in availability accounting.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	price     float64
	period    *kernel.DateRange

	isConstructed bool
}

// NewItem creates a line item with validation. Quantity must be positive and
// the price snapshot non-negative. The period may be nil for non-dated items;
// when present it must be a properly constructed DateRange.
func NewItem(id, productID kernel.UUID, quantity int, price float64, period *kernel.DateRange) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setPrice(price),
		item.setPeriod(period),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence.
// Runs the same validation as NewItem.
func RestoreItem(id, productID kernel.UUID, quantity int, price float64, period *kernel.DateRange) (*Item, error) {
	return NewItem(id, productID, quantity, price, period)
}

// Validate ensures the Item was created through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the reserved product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of reserved units.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the per-period rate snapshot captured at order creation.
func (i *Item) Price() float64 {
	return i.price
}

// Period returns the rental window, or nil for non-dated items.
func (i *Item) Period() *kernel.DateRange {
	return i.period
}

// IsDated reports whether the item reserves stock for a rental window.
// Non-dated items never consume or block dated reservations.
func (i *Item) IsDated() bool {
	return i.period != nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%g is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setPeriod(period *kernel.DateRange) error {
	if period == nil {
		return nil
	}
	if err := period.Validate(); err != nil {
		return err
	}
	i.period = period
	return nil
}
