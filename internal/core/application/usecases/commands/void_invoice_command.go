package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrVoidInvoiceCommandIsNotConstructed = errors.New(
	"VoidInvoiceCommand must be created via NewVoidInvoiceCommand constructor",
)

// VoidInvoiceCommand represents a request to cancel an invoice.
type VoidInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewVoidInvoiceCommand creates a command to void an invoice.
// Voiding is a staff operation.
func NewVoidInvoiceCommand(invoiceID kernel.UUID, actor kernel.Actor) (VoidInvoiceCommand, error) {
	cmd := VoidInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setActor(actor),
	); err != nil {
		return VoidInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VoidInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrVoidInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the invoice to void.
func (c VoidInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Actor returns the authenticated caller.
func (c VoidInvoiceCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *VoidInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *VoidInvoiceCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Role().IsStaff() {
		return ErrActorNotAllowed
	}

	c.actor = actor
	return nil
}
