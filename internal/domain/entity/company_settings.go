package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanySettings es la configuración de la empresa (una sola fila).
// TaxRate es una tasa plana, p.ej. 0.19 para IVA 19%.
type CompanySettings struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	TaxID     string
	Email     string
	Currency  string
	TaxRate   decimal.Decimal
	UpdatedAt time.Time
}
