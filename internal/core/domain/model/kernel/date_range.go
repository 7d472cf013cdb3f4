package kernel

import (
	"fmt"
	"time"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// ErrDateRangeIsNotConstructed indicates that a DateRange was not created through NewDateRange.
// The zero value of DateRange is invalid and fails validation.
var ErrDateRangeIsNotConstructed = errs.NewValueIsRequiredError("DateRange must be created via NewDateRange")

// DateRange is a value object representing an inclusive rental period [start, end].
// Both boundary days belong to the period: a rental ending on the same day another
// begins is treated as overlapping, which is the single conflict rule used by the
// reservation engine.
//
// DateRange is immutable and thread-safe. Use NewDateRange to construct instances;
// the zero value is invalid.
//
// Example usage:
//
//	period, err := kernel.NewDateRange(pickupDay, returnDay)
//	if err != nil {
//	    // end precedes start, or a boundary is missing
//	}
//	if period.Overlaps(other) {
//	    // booking conflict
//	}
type DateRange struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewDateRange creates a DateRange from inclusive start and end days.
// Both boundaries are required, and end must not precede start.
// Returns a validation error otherwise.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("startDate")
	}
	if end.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("endDate")
	}
	if end.Before(start) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause("endDate",
			fmt.Errorf("end %s precedes start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}

	return DateRange{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Start returns the inclusive first day of the period.
func (r DateRange) Start() time.Time {
	return r.start
}

// End returns the inclusive last day of the period.
func (r DateRange) End() time.Time {
	return r.end
}

// Overlaps reports whether two periods intersect.
// Boundaries are inclusive: [S1,E1] and [S2,E2] overlap iff S1 <= E2 and E1 >= S2.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// Contains reports whether the given instant falls within the period, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

// IsEqual compares two date ranges by their boundaries.
func (r DateRange) IsEqual(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// String returns the period in "start..end" RFC 3339 form.
func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339))
}

// Validate checks that the DateRange was properly constructed via NewDateRange.
func (r DateRange) Validate() error {
	return r.guard.Validate(ErrDateRangeIsNotConstructed)
}
