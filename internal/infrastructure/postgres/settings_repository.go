package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository sobre PostgreSQL.
// La tabla company_settings contiene a lo sumo una fila.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de persistencia para la configuración.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la fila de configuración, o nil si aún no existe.
func (r *SettingsRepo) Get() (*entity.CompanySettings, error) {
	query := `
		SELECT id, name, address, phone, tax_id, email, currency, tax_rate, updated_at
		FROM company_settings LIMIT 1`
	var s entity.CompanySettings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.TaxID, &s.Email, &s.Currency,
		&s.TaxRate, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert inserta la fila si no existe o la actualiza si ya hay una.
func (r *SettingsRepo) Upsert(settings *entity.CompanySettings) error {
	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}
	query := `
		INSERT INTO company_settings (id, name, address, phone, tax_id, email, currency, tax_rate, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address, phone = EXCLUDED.phone,
		              tax_id = EXCLUDED.tax_id, email = EXCLUDED.email, currency = EXCLUDED.currency,
		              tax_rate = EXCLUDED.tax_rate, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.Name, settings.Address, settings.Phone, settings.TaxID,
		settings.Email, settings.Currency, settings.TaxRate, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
