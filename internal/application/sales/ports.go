package sales

import (
	"context"

	"github.com/jhoicas/pos-ferreteria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el registro de
// ventas: cabecera, items y descuentos de stock se confirman o revierten
// juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
