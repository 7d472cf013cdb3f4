// Package invoice provides the Invoice aggregate: the single billing record
// tied one-to-one to a rental order. An order has zero or one invoice at any
// time; the invoice is created lazily by a separate operation, never at order
// creation.
//
// Key business rules:
//   - Invoices are created Unpaid with the order's total at creation time
//   - Marking an invoice paid happens only inside the order pay transition,
//     keeping order and invoice status consistent at all times
//   - Voiding is independent of the order's status and cancels the bill
package invoice

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through the NewInvoice or RestoreInvoice factory methods.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")

// Invoice is the billing record for exactly one order.
type Invoice struct {
	id          kernel.UUID
	orderID     kernel.UUID
	amount      float64
	status      Status
	method      string
	paymentDate *time.Time

	isConstructed bool
}

// NewInvoice creates an Unpaid invoice for the given order.
// The amount is the order's total at the time of creation.
func NewInvoice(id, orderID kernel.UUID, amount float64) (*Invoice, error) {
	inv := &Invoice{
		status:        Unpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOrderID(orderID),
		inv.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice reconstructs an invoice from persistence.
func RestoreInvoice(
	id, orderID kernel.UUID,
	amount float64,
	status Status,
	method string,
	paymentDate *time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		method:        method,
		paymentDate:   paymentDate,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOrderID(orderID),
		inv.setAmount(amount),
		inv.setStatus(status),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate ensures the Invoice was created through a factory method.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}

	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the billed order.
func (i *Invoice) OrderID() kernel.UUID {
	return i.orderID
}

// Amount returns the billed amount.
func (i *Invoice) Amount() float64 {
	return i.amount
}

// Status returns the current status of the invoice.
func (i *Invoice) Status() Status {
	return i.status
}

// Method returns the recorded payment method, empty until paid.
func (i *Invoice) Method() string {
	return i.method
}

// PaymentDate returns when the invoice was paid, nil until then.
func (i *Invoice) PaymentDate() *time.Time {
	return i.paymentDate
}

// MarkPaid records payment of the invoice, stamping the payment date and
// method. Legal whenever the invoice is not already paid. Only the order pay
// transition may call this so both records change in one transaction.
func (i *Invoice) MarkPaid(method string, paidAt time.Time) error {
	newStatus, err := i.status.Pay()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.method = method
	i.paymentDate = &paidAt
	return nil
}

// Void force-cancels the bill regardless of its current status and
// independently of the order's lifecycle.
func (i *Invoice) Void() {
	i.status = Void
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	i.orderID = orderID
	return nil
}

func (i *Invoice) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%g is negative", amount))
	}
	i.amount = amount
	return nil
}

func (i *Invoice) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}
