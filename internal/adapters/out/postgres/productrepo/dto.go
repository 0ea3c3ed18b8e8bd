// Package productrepo persists the product catalog and implements the atomic
// stock ledger operations checkout and cancellation rely on.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Price float64
	Stock int `gorm:"check:stock >= 0"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Price: aggregate.Price().Amount(),
		Stock: aggregate.Stock(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, dto.Name, price, dto.Stock)
}
