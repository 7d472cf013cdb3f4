package invoice

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Status represents the lifecycle state of an invoice.
//
// State transitions:
//
//	Unpaid ──> Paid
//	   │
//	   └─────> Void   (voiding is a forced cancel, legal from any state)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Unpaid is the initial status when an invoice is created.
	Unpaid

	// Paid indicates payment has been recorded.
	Paid

	// Void indicates the bill was cancelled.
	Void
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Unpaid:  "Unpaid",
		Paid:    "Paid",
		Void:    "Void",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unpaid: "Unpaid",
		Paid:   "Paid",
		Void:   "Void",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid invoice status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid.
// Legal from any status except Paid itself: paying twice is the one
// forbidden move, voided bills may still be settled.
func (s Status) Pay() (Status, error) {
	if s == Paid {
		return 0, errs.NewObjectInvalidStateErrorWithCause(
			"invoice",
			s.String(),
			fmt.Errorf("invoice is already paid"),
		)
	}

	return Paid, nil
}
