package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a request to record payment of a confirmed
// order. Payment is modeled as a state flag set by a trusted caller; no
// gateway is involved. Customers pay their own orders; staff may record
// payment on any order.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	method  string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to record an order payment.
func NewPayOrderCommand(orderID kernel.UUID, actor kernel.Actor, method string) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		method: method,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated caller.
func (c PayOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Method returns the payment method to record, possibly empty.
func (c PayOrderCommand) Method() string {
	return c.method
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
