package repository

// MaintenanceRepository define operaciones administrativas sobre el almacén.
type MaintenanceRepository interface {
	// Reset borra ventas, items, productos, clientes y categorías en una sola
	// transacción, hijos antes que padres por las foreign keys. La
	// configuración de empresa se conserva.
	Reset() error
}
