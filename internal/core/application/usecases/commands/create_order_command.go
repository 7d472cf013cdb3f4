package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemInput describes one requested line item. The price is not part of the
// input: rates are snapshotted from the catalog when the order is created, so
// clients cannot bill themselves at stale or forged prices.
type ItemInput struct {
	productID kernel.UUID
	quantity  int
	period    *kernel.DateRange
}

// NewItemInput creates a validated line-item request. The period may be nil
// for items that do not reserve stock.
func NewItemInput(productID kernel.UUID, quantity int, period *kernel.DateRange) (ItemInput, error) {
	if err := productID.Validate(); err != nil {
		return ItemInput{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if quantity <= 0 {
		return ItemInput{}, errs.NewValueIsInvalidError("quantity")
	}
	if period != nil {
		if err := period.Validate(); err != nil {
			return ItemInput{}, err
		}
	}

	return ItemInput{productID: productID, quantity: quantity, period: period}, nil
}

// ProductID returns the requested product.
func (i ItemInput) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested unit count.
func (i ItemInput) Quantity() int {
	return i.quantity
}

// Period returns the requested rental window, nil for non-dated items.
func (i ItemInput) Period() *kernel.DateRange {
	return i.period
}

// CreateOrderCommand represents a request to create a new rental order in
// Quotation status. Vendors and admins may create orders on behalf of another
// customer; customers only for themselves.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	userID  kernel.UUID
	items   []ItemInput
	totals  order.Totals
	note    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new rental order.
// Validates the order ID, actor, owning user, and that at least one item is
// requested. Returns ErrActorNotAllowed when a customer targets another user.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	userID kernel.UUID,
	items []ItemInput,
	totals order.Totals,
	note string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorAndUser(actor, userID),
		cmd.setItems(items),
		cmd.setTotals(totals),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated caller.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// UserID returns the customer the order belongs to.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// Totals returns the monetary breakdown for the new order.
func (c CreateOrderCommand) Totals() order.Totals {
	return c.totals
}

// Note returns the free-form note attached to the order.
func (c CreateOrderCommand) Note() string {
	return c.note
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActorAndUser(actor kernel.Actor, userID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if !actor.Role().IsStaff() && !userID.IsEqual(actor.UserID()) {
		return ErrActorNotAllowed
	}

	c.actor = actor
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.ProductID().Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("productId", err)
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTotals(totals order.Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}

	c.totals = totals
	return nil
}
