package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name       string           `json:"name" validate:"required,min=1,max=200"`
	Price      *decimal.Decimal `json:"price" validate:"required"`
	Stock      int              `json:"stock" validate:"omitempty,gte=0"`
	MinStock   int              `json:"min_stock" validate:"omitempty,gte=0"`
	Category   string           `json:"category"`
	CategoryID string           `json:"category_id"`
	Code       string           `json:"code"`
}

// UpdateProductRequest entrada para actualización parcial; los campos nil no
// se tocan. El conjunto de campos es fijo: no se aceptan claves arbitrarias.
type UpdateProductRequest struct {
	Name       *string          `json:"name"`
	Price      *decimal.Decimal `json:"price"`
	Stock      *int             `json:"stock"`
	MinStock   *int             `json:"min_stock"`
	Category   *string          `json:"category"`
	CategoryID *string          `json:"category_id"`
	Code       *string          `json:"code"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"min_stock"`
	Category   string          `json:"category,omitempty"`
	CategoryID string          `json:"category_id,omitempty"`
	Code       string          `json:"code,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
