// Package product provides the catalog projection consumed by the rental
// core. Products are owned by the external catalog service; the core reads
// their stock figures and mutates only quantityOnHand through the guarded
// pickup and return transitions.
package product

import (
	"errors"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is the catalog entity referenced by order items.
//
// Stock is the total rentable unit count used by the reservation engine;
// QuantityOnHand tracks units physically in the warehouse and moves only at
// pickup (down) and return (up). Price is the current per-period rate; order
// items snapshot it at creation.
type Product struct {
	id             kernel.UUID
	name           string
	stock          int
	quantityOnHand int
	price          float64

	isConstructed bool
}

// NewProduct creates a product projection with validation.
func NewProduct(id kernel.UUID, name string, stock, quantityOnHand int, price float64) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setStock(stock),
		p.setQuantityOnHand(quantityOnHand),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, name string, stock, quantityOnHand int, price float64) (*Product, error) {
	return NewProduct(id, name, stock, quantityOnHand, price)
}

// Validate ensures the Product was created through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name used in stock-conflict messages.
func (p *Product) Name() string {
	return p.name
}

// Stock returns the total rentable unit count.
func (p *Product) Stock() int {
	return p.stock
}

// QuantityOnHand returns the units physically in the warehouse.
func (p *Product) QuantityOnHand() int {
	return p.quantityOnHand
}

// Price returns the current per-period rate.
func (p *Product) Price() float64 {
	return p.price
}

// DecreaseOnHand removes units from the warehouse at pickup.
// Fails with a stock conflict if more units are requested than are on hand.
func (p *Product) DecreaseOnHand(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > p.quantityOnHand {
		return errs.NewStockConflictError(p.name, quantity, p.quantityOnHand)
	}

	p.quantityOnHand -= quantity
	return nil
}

// IncreaseOnHand puts units back into the warehouse at return.
// On-hand can never exceed total stock.
func (p *Product) IncreaseOnHand(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.quantityOnHand+quantity > p.stock {
		return errs.NewValueIsOutOfRangeError("quantityOnHand", p.quantityOnHand+quantity, 0, p.stock)
	}

	p.quantityOnHand += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

func (p *Product) setQuantityOnHand(quantityOnHand int) error {
	if quantityOnHand < 0 || quantityOnHand > p.stock {
		return errs.NewValueIsOutOfRangeError("quantityOnHand", quantityOnHand, 0, p.stock)
	}
	p.quantityOnHand = quantityOnHand
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%g is negative", price))
	}
	p.price = price
	return nil
}
