package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Stock es entero y se descuenta
// desde el procesador de ventas; MinStock es un umbral de reorden informativo.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal
	Stock      int
	MinStock   int
	Category   string // nombre libre, redundante con CategoryID por compatibilidad
	CategoryID string // vacío si no está clasificado
	Code       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
