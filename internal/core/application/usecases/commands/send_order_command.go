package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrSendOrderCommandIsNotConstructed = errors.New(
	"SendOrderCommand must be created via NewSendOrderCommand constructor",
)

// SendOrderCommand represents a request to send a quotation to its customer.
type SendOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewSendOrderCommand creates a command to send a quotation.
// Sending is a staff operation.
func NewSendOrderCommand(orderID kernel.UUID, actor kernel.Actor) (SendOrderCommand, error) {
	cmd := SendOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return SendOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOrderCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderCommandIsNotConstructed)
}

// OrderID returns the quotation to send.
func (c SendOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated caller.
func (c SendOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *SendOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SendOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Role().IsStaff() {
		return ErrActorNotAllowed
	}

	c.actor = actor
	return nil
}
