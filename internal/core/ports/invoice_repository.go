package ports

import (
	"context"

	"rental/internal/core/domain/model/invoice"
	"rental/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
// The store enforces at most one invoice per order; Add surfaces a duplicate
// as an ObjectAlreadyExistsError.
type InvoiceRepository interface {
	// Add persists a new invoice. Fails with an ObjectAlreadyExistsError
	// when the order already has one.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByOrderID retrieves the invoice billed against the given order.
	// Returns an ObjectNotFoundError when the order has no invoice yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error)
}
