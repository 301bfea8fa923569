package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest actualización parcial de la configuración de empresa.
// Conjunto de campos fijo: claves desconocidas en el JSON se ignoran.
type UpdateSettingsRequest struct {
	Name     *string          `json:"name"`
	Address  *string          `json:"address"`
	Phone    *string          `json:"phone"`
	TaxID    *string          `json:"tax_id"`
	Email    *string          `json:"email"`
	Currency *string          `json:"currency"`
	TaxRate  *decimal.Decimal `json:"tax_rate"`
}

// SettingsResponse configuración de empresa. Cuando no hay fila se responden
// los defaults (nombre vacío, tasa cero).
type SettingsResponse struct {
	Name     string          `json:"name"`
	Address  string          `json:"address,omitempty"`
	Phone    string          `json:"phone,omitempty"`
	TaxID    string          `json:"tax_id,omitempty"`
	Email    string          `json:"email,omitempty"`
	Currency string          `json:"currency,omitempty"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}
