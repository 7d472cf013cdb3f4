package order

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Quotation ──> QuotationSent ──┐
//	    │                         │
//	    └──────────> SalesOrder <─┘
//	                     │
//	                    Paid ──> PickedUp ──> Returned
//
// SalesOrder is the confirmed state; downstream billing treats it as
// equivalent to "Confirmed". Statuses in the reserving set (SalesOrder,
// Paid, PickedUp) hold units against product availability.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Quotation is the initial status when an order is first created.
	// Quotations do not yet reserve stock.
	Quotation

	// QuotationSent indicates the quotation has been sent to the customer.
	// Still a soft hold only; stock is not reserved.
	QuotationSent

	// SalesOrder indicates the order has been confirmed against available
	// stock. From here the order's items count against product availability.
	SalesOrder

	// Paid indicates the order's invoice has been paid.
	Paid

	// PickedUp indicates the goods have physically left the warehouse.
	PickedUp

	// Returned indicates the goods came back and fees were settled.
	// This is a final state with no further transitions allowed.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Quotation:     "Quotation",
		QuotationSent: "QuotationSent",
		SalesOrder:    "SalesOrder",
		Paid:          "Paid",
		PickedUp:      "PickedUp",
		Returned:      "Returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Quotation:     "Quotation",
		QuotationSent: "QuotationSent",
		SalesOrder:    "SalesOrder",
		Paid:          "Paid",
		PickedUp:      "PickedUp",
		Returned:      "Returned",
	}
}

// ReservingStatuses returns the statuses whose line items count against
// product availability. Quotations are soft holds and intentionally absent:
// stock is only committed once an order is confirmed.
func ReservingStatuses() []Status {
	return []Status{SalesOrder, Paid, PickedUp}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other unmapped values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsReserving reports whether items of an order in this status hold units
// against product availability.
func (s Status) IsReserving() bool {
	return s == SalesOrder || s == Paid || s == PickedUp
}

// ValidateConfirm checks if the status allows confirmation without
// performing the transition. Confirmation is legal from Quotation and
// QuotationSent only.
func (s Status) ValidateConfirm() error {
	if s != Quotation && s != QuotationSent {
		return errs.NewObjectInvalidStateErrorWithCause(
			"order",
			s.String(),
			fmt.Errorf("%s is not a confirmable status", s.String()),
		)
	}
	return nil
}

// Send transitions the status to QuotationSent.
// Valid only from Quotation.
func (s Status) Send() (Status, error) {
	if s != Quotation {
		return 0, errs.NewObjectInvalidStateErrorWithCause(
			"order",
			s.String(),
			fmt.Errorf("only a %s can be sent", Quotation),
		)
	}

	return QuotationSent, nil
}

// Confirm transitions the status to SalesOrder.
// Valid from Quotation and QuotationSent. The availability guard is not
// enforced here: callers must check reserved quantities before confirming.
func (s Status) Confirm() (Status, error) {
	if err := s.ValidateConfirm(); err != nil {
		return 0, err
	}

	return SalesOrder, nil
}

// Pay transitions the status to Paid.
// Valid only from SalesOrder; callers must ensure a paid invoice exists.
func (s Status) Pay() (Status, error) {
	if s != SalesOrder {
		return 0, errs.NewObjectInvalidStateErrorWithCause(
			"order",
			s.String(),
			fmt.Errorf("only a confirmed %s can be paid", SalesOrder),
		)
	}

	return Paid, nil
}

// ValidatePickup checks if the status allows pickup without performing the
// transition. Used to reject pickups before any stock movement happens.
func (s Status) ValidatePickup() error {
	if s != Paid {
		return errs.NewObjectInvalidStateErrorWithCause(
			"order",
			s.String(),
			fmt.Errorf("only a %s order can be picked up", Paid),
		)
	}
	return nil
}

// Pickup transitions the status to PickedUp.
// Valid only from Paid.
func (s Status) Pickup() (Status, error) {
	if err := s.ValidatePickup(); err != nil {
		return 0, err
	}

	return PickedUp, nil
}

// Return transitions the status to Returned.
// Valid only from PickedUp. Returned is a final state.
func (s Status) Return() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewObjectInvalidStateErrorWithCause(
			"order",
			s.String(),
			fmt.Errorf("only a %s order can be returned", PickedUp),
		)
	}

	return Returned, nil
}
