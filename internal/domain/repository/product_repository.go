package repository

import "github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// DecrementStock descuenta quantity del stock del producto en una sola
	// sentencia UPDATE; dentro de una transacción el decremento es atómico
	// por fila, así que ventas concurrentes no pierden actualizaciones.
	DecrementStock(productID string, quantity int) error
}
