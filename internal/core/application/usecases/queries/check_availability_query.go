package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrCheckAvailabilityQueryIsNotConstructed = errors.New(
	"CheckAvailabilityQuery must be created via NewCheckAvailabilityQuery constructor",
)

// CheckAvailabilityQuery asks how many units of a product are free to rent
// over a date range. The answer is advisory: only the confirm transaction,
// which re-runs the same ledger arithmetic under row locks, is authoritative.
type CheckAvailabilityQuery struct {
	productID kernel.UUID
	period    kernel.DateRange

	guard guard.ConstructorGuard
}

// NewCheckAvailabilityQuery creates an availability query for one product
// and rental period.
func NewCheckAvailabilityQuery(productID kernel.UUID, period kernel.DateRange) (CheckAvailabilityQuery, error) {
	q := CheckAvailabilityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setProductID(productID),
		q.setPeriod(period),
	); err != nil {
		return CheckAvailabilityQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckAvailabilityQueryIsNotConstructed)
}

// ProductID returns the product being checked.
func (q CheckAvailabilityQuery) ProductID() kernel.UUID {
	return q.productID
}

// Period returns the rental period being checked.
func (q CheckAvailabilityQuery) Period() kernel.DateRange {
	return q.period
}

func (q *CheckAvailabilityQuery) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	q.productID = productID
	return nil
}

func (q *CheckAvailabilityQuery) setPeriod(period kernel.DateRange) error {
	if err := period.Validate(); err != nil {
		return err
	}

	q.period = period
	return nil
}

// CheckAvailabilityQueryResponse reports the stock arithmetic for one product
// over one period: Available = TotalStock - Reserved, floored at zero.
type CheckAvailabilityQueryResponse struct {
	ProductID  kernel.UUID
	TotalStock int
	Reserved   int
	Available  int
}
