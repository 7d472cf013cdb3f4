package kernel

import (
	"fmt"

	"rental/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, items, invoices, products and users. It wraps
// github.com/google/uuid behind a value object so identifiers stay immutable
// and validated at the domain boundary.
//
// The zero value is invalid: construct through NewUUID, UUIDFromString or
// UUIDFromBytes. Aggregates call Validate in their constructors, so an
// identifier that slipped in as a zero value fails fast instead of
// persisting as the nil UUID.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 UUID. Used wherever the system mints
// a fresh identifier: new orders, invoices, line items.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the textual form, as received in HTTP paths and
// request bodies. Standard representations accepted by the underlying
// library all work, including the braced and urn:uuid prefixed ones.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores an identifier from its 16-byte binary form, the
// shape the postgres repositories store. A nil UUID is rejected so database
// rows with an unset key cannot round-trip into a valid identifier.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
// The zero value renders as the nil UUID string.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID for persistence and for libraries
// that work with the google/uuid type directly. Slice it for raw bytes.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
