package usecase

import "github.com/jhoicas/pos-ferreteria-api/internal/domain/repository"

// MaintenanceUseCase operaciones administrativas: reinicio del sistema.
type MaintenanceUseCase struct {
	repo repository.MaintenanceRepository
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo}
}

// Reset borra todos los datos operativos (ventas, productos, clientes,
// categorías) en una sola transacción. Usuarios y configuración de empresa
// se conservan.
func (uc *MaintenanceUseCase) Reset() error {
	return uc.repo.Reset()
}
