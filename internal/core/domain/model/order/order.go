package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Totals is the monetary breakdown captured when the order is created.
// All amounts are in the platform's single currency.
type Totals struct {
	Untaxed  float64
	Tax      float64
	Discount float64
	Shipping float64
	Total    float64
}

// Validate checks that no amount is negative.
func (t Totals) Validate() error {
	for name, v := range map[string]float64{
		"untaxedAmount":  t.Untaxed,
		"taxAmount":      t.Tax,
		"discountAmount": t.Discount,
		"shippingCost":   t.Shipping,
		"totalAmount":    t.Total,
	} {
		if v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is negative", v))
		}
	}
	return nil
}

// Order represents a rental order in the system. It is the aggregate root that
// owns the order header, its line items, and the lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number, and user
//   - Must own at least one line item; items share the order's lifecycle
//   - Status transitions follow the rules defined on Status
//   - The late fee is only ever set by the Return transition
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	orderNumber string
	userID      kernel.UUID
	items       []*Item
	status      Status
	totals      Totals
	lateFee     float64
	note        string

	isConstructed bool
}

// NewOrder creates a new Order in Quotation status. This is the only way to
// create a fresh order, ensuring all business invariants hold: the item list
// must be non-empty and every item must be properly constructed.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	userID kernel.UUID,
	items []*Item,
	totals Totals,
	note string,
) (*Order, error) {
	o := &Order{
		status:        Quotation,
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setUserID(userID),
		o.setItems(items),
		o.setTotals(totals),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status
// and late fee. Used by repositories only.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	userID kernel.UUID,
	items []*Item,
	status Status,
	totals Totals,
	lateFee float64,
	note string,
) (*Order, error) {
	o := &Order{
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setUserID(userID),
		o.setItems(items),
		o.setTotals(totals),
		o.setStatus(status),
		o.setLateFee(lateFee),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// GenerateOrderNumber derives the human-readable unique order number assigned
// at creation, e.g. "SO-20260115-550E8400". Uniqueness follows from the
// UUID fragment; the date prefix keeps numbers sortable for humans.
func GenerateOrderNumber(now time.Time, id kernel.UUID) string {
	fragment := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:8]
	return fmt.Sprintf("SO-%s-%s", now.Format("20060102"), fragment)
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable unique order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// UserID returns the identifier of the customer the order belongs to.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns the order's line items. The slice must not be mutated.
func (o *Order) Items() []*Item {
	return o.items
}

// DatedItems returns the line items that reserve stock for a rental window.
func (o *Order) DatedItems() []*Item {
	dated := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		if item.IsDated() {
			dated = append(dated, item)
		}
	}
	return dated
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Totals returns the monetary breakdown captured at creation.
func (o *Order) Totals() Totals {
	return o.totals
}

// LateFee returns the fee computed at return time, zero before that.
func (o *Order) LateFee() float64 {
	return o.lateFee
}

// Note returns the free-form note attached to the order.
func (o *Order) Note() string {
	return o.note
}

// Send marks the quotation as sent to the customer.
// Valid only from Quotation.
func (o *Order) Send() error {
	newStatus, err := o.status.Send()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Confirm transitions the order to SalesOrder. The caller is responsible for
// the availability guard: reserved quantities for every dated item must have
// been checked in the same transaction that persists this transition.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPaid transitions the order to Paid. Only the pay operation may call
// this, together with marking the invoice paid, so the two records are never
// left inconsistent.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Pickup transitions the order to PickedUp. The caller decrements on-hand
// stock for every item atomically with persisting this transition.
func (o *Order) Pickup() error {
	newStatus, err := o.status.Pickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Return transitions the order to Returned and stores the late fee computed
// by the fulfillment engine. The caller increments on-hand stock for every
// item atomically with persisting this transition.
func (o *Order) Return(lateFee float64) error {
	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}
	if err := o.setLateFee(lateFee); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	o.totals = totals
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLateFee(lateFee float64) error {
	if lateFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("lateFee", fmt.Errorf("%g is negative", lateFee))
	}
	o.lateFee = lateFee
	return nil
}
