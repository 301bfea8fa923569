package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	DocumentID string `json:"document_id"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// UpdateCustomerRequest actualización parcial con conjunto de campos fijo.
type UpdateCustomerRequest struct {
	Name       *string `json:"name"`
	DocumentID *string `json:"document_id"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
}

// CustomerResponse salida de un cliente. TotalPurchases es el acumulado de
// sus ventas (solo en listados).
type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	DocumentID     string          `json:"document_id,omitempty"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	CreatedAt      time.Time       `json:"created_at"`
}
