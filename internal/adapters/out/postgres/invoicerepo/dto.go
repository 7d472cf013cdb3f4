// Package invoicerepo persists the invoice aggregate. The unique index on
// order_id is the database-level enforcement of the one-invoice-per-order
// rule; a concurrent double create surfaces as a unique violation.
package invoicerepo

import (
	"time"

	"rental/internal/core/domain/model/invoice"
	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoices.
type InvoiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Amount      float64
	Status      int `gorm:"index"`
	Method      string
	PaymentDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice aggregate to its database representation.
func fromDomain(bill *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:          bill.ID().Bytes(),
		OrderID:     bill.OrderID().Bytes(),
		Amount:      bill.Amount(),
		Status:      int(bill.Status()),
		Method:      bill.Method(),
		PaymentDate: bill.PaymentDate(),
	}
}

// toDomain converts a database DTO back to an invoice aggregate.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id,
		orderID,
		dto.Amount,
		invoice.Status(dto.Status),
		dto.Method,
		dto.PaymentDate,
	)
}
