package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento de venta.
const (
	DocumentTicket  = "ticket"  // recibo informal
	DocumentInvoice = "invoice" // factura con desglose de impuestos
)

// Métodos de pago conocidos; el campo es texto libre con "cash" por defecto.
const PaymentCash = "cash"

// Sale es la cabecera de una venta completada. Se crea junto con sus items en
// una sola transacción y nunca se edita ni anula después.
type Sale struct {
	ID            string
	CustomerID    string // vacío si es venta sin cliente
	Total         decimal.Decimal
	PaymentMethod string
	DocumentType  string
	CreatedAt     time.Time
	Items         []SaleItem
}

// SaleItem es una línea de venta: producto, cantidad y precio unitario al
// momento de la venta.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string // denormalizado en el read model, no se persiste
	Quantity    int
	UnitPrice   decimal.Decimal
}
