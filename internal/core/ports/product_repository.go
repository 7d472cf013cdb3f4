package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the catalog
// projection. The rental core never creates products; it reads stock figures
// and persists on-hand movements caused by pickup and return.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product and locks its row for the duration
	// of the surrounding transaction. Confirmations lock the product before
	// reading reserved quantities so concurrent confirms serialize per
	// product and cannot jointly over-book.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Update persists the product's current on-hand quantity.
	Update(ctx context.Context, aggregate *product.Product) error
}
