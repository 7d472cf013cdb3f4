package kernel

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Role represents the caller role supplied by the identity service.
// Roles gate which lifecycle operations a caller may invoke:
// vendors and admins confirm, invoice, pick up and return orders and may
// create orders on behalf of another customer; customers create orders
// for themselves and pay their own orders.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer is an ordinary marketplace customer.
	RoleCustomer

	// RoleVendor is a vendor managing listed rental goods.
	RoleVendor

	// RoleAdmin is a platform administrator.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "Customer",
		RoleVendor:   "Vendor",
		RoleAdmin:    "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "Customer",
		RoleVendor:   "Vendor",
		RoleAdmin:    "Admin",
	}
}

// RoleFromString parses a role from its textual representation, such as the
// role claim carried by authenticated requests. The comparison is exact.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsStaff reports whether the role may manage order fulfillment:
// confirming, invoicing, picking up and returning orders.
func (r Role) IsStaff() bool {
	return r == RoleVendor || r == RoleAdmin
}

// Actor is the authenticated caller identity supplied by the identity service.
// It pairs the caller's user ID with the role that gates operations.
type Actor struct {
	userID UUID
	role   Role
}

// NewActor creates an Actor from a validated user ID and role.
func NewActor(userID UUID, role Role) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{userID: userID, role: role}, nil
}

// UserID returns the acting user's identifier.
func (a Actor) UserID() UUID {
	return a.userID
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// Validate checks that the Actor carries a valid identity and role.
func (a Actor) Validate() error {
	if err := a.userID.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
