package repository

import "github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para CompanySettings
// (una sola fila, upsert).
type SettingsRepository interface {
	Get() (*entity.CompanySettings, error)
	Upsert(settings *entity.CompanySettings) error
}
