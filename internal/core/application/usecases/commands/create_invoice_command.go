package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand represents a request to raise the bill for an order.
// An order carries at most one invoice; raising a second fails with a
// conflict. The order's status is not touched.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	method  string

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to raise an order's invoice.
// Invoicing is a staff operation. The payment method is optional and only
// recorded once the invoice is paid.
func NewCreateInvoiceCommand(orderID kernel.UUID, actor kernel.Actor, method string) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		method: method,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// OrderID returns the order to bill.
func (c CreateInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated caller.
func (c CreateInvoiceCommand) Actor() kernel.Actor {
	return c.actor
}

// Method returns the intended payment method, possibly empty.
func (c CreateInvoiceCommand) Method() string {
	return c.method
}

func (c *CreateInvoiceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateInvoiceCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Role().IsStaff() {
		return ErrActorNotAllowed
	}

	c.actor = actor
	return nil
}
