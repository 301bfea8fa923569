package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"
)

// CustomerWithTotals es el read model del listado: cliente más el acumulado
// de sus compras.
type CustomerWithTotals struct {
	entity.Customer
	TotalPurchases decimal.Decimal
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List() ([]*CustomerWithTotals, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
