// Package productrepo persists the product catalog projection. Confirm,
// pickup and return lock product rows with SELECT ... FOR UPDATE so that
// concurrent availability checks serialize on the same product.
package productrepo

import (
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"size:255"`
	Stock          int
	QuantityOnHand int
	Price          float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product entity to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID().Bytes(),
		Name:           p.Name(),
		Stock:          p.Stock(),
		QuantityOnHand: p.QuantityOnHand(),
		Price:          p.Price(),
	}
}

// toDomain converts a database DTO back to a product entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Stock, dto.QuantityOnHand, dto.Price)
}
