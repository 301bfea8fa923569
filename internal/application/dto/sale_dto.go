package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta entrante.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// CreateSaleRequest entrada del procesador de ventas. Total e items son
// obligatorios; payment_method y document_type tienen defaults.
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id"`
	Total         *decimal.Decimal  `json:"total" validate:"required"`
	PaymentMethod string            `json:"payment_method"`
	DocumentType  string            `json:"document_type" validate:"omitempty,oneof=ticket invoice"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateSaleResponse salida del procesador: id de la venta creada.
type CreateSaleResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// SaleItemResponse línea de venta en el historial, con nombre de producto
// resuelto por join.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SaleCustomerResponse datos de cliente anidados en el historial de ventas.
type SaleCustomerResponse struct {
	Name       string `json:"name"`
	DocumentID string `json:"document_id,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// SaleResponse una venta del historial con cliente e items anidados.
type SaleResponse struct {
	ID            string                `json:"id"`
	CustomerID    string                `json:"customer_id,omitempty"`
	Total         decimal.Decimal       `json:"total"`
	PaymentMethod string                `json:"payment_method"`
	DocumentType  string                `json:"document_type"`
	CreatedAt     time.Time             `json:"created_at"`
	Customer      *SaleCustomerResponse `json:"customer"`
	Items         []SaleItemResponse    `json:"items"`
}
