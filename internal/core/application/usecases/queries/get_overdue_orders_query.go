package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves picked-up orders whose rental period has
// already ended. Used by the reminder job to chase late returns.
type GetOverdueOrdersQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query for orders overdue at the given
// moment.
func NewGetOverdueOrdersQuery(asOf time.Time) (GetOverdueOrdersQuery, error) {
	q := GetOverdueOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setAsOf(asOf); err != nil {
		return GetOverdueOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// AsOf returns the moment overdueness is judged against.
func (q GetOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}

func (q *GetOverdueOrdersQuery) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}

	q.asOf = asOf
	return nil
}

// GetOverdueOrdersQueryResponse identifies one overdue order and how late it
// is against its earliest-ending line.
type GetOverdueOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	UserID      kernel.UUID
	DueDate     time.Time
}
