package repository

import "github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"

// SaleWithCustomer es el read model del historial: venta con los datos de
// cliente resueltos por join (nil si la venta no tiene cliente).
type SaleWithCustomer struct {
	entity.Sale
	Customer *entity.Customer
}

// SaleRepository define el puerto de persistencia para Sale y SaleItem.
// Create y CreateItem se invocan dentro de la transacción de venta; List es
// el read model (fuera del núcleo transaccional).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	List() ([]*SaleWithCustomer, error)
}
