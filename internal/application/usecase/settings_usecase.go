package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ferreteria-api/internal/application/dto"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/repository"
)

// SettingsUseCase gestiona la configuración de empresa (una sola fila).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso con el puerto de persistencia.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración actual; si nunca se ha guardado, responde
// los defaults (nombre vacío, tasa cero) en lugar de 404.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &dto.SettingsResponse{Name: "", TaxRate: decimal.Zero}, nil
	}
	return toSettingsResponse(settings), nil
}

// Update hace upsert de la fila única aplicando solo los campos presentes.
// Exige al menos un campo (entrada vacía es inválida).
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if in.Name == nil && in.Address == nil && in.Phone == nil && in.TaxID == nil &&
		in.Email == nil && in.Currency == nil && in.TaxRate == nil {
		return nil, domain.ErrInvalidInput
	}

	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.CompanySettings{TaxRate: decimal.Zero}
	}

	if in.Name != nil {
		settings.Name = *in.Name
	}
	if in.Address != nil {
		settings.Address = *in.Address
	}
	if in.Phone != nil {
		settings.Phone = *in.Phone
	}
	if in.TaxID != nil {
		settings.TaxID = *in.TaxID
	}
	if in.Email != nil {
		settings.Email = *in.Email
	}
	if in.Currency != nil {
		settings.Currency = *in.Currency
	}
	if in.TaxRate != nil {
		settings.TaxRate = *in.TaxRate
	}
	settings.UpdatedAt = time.Now()

	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.CompanySettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Name:     s.Name,
		Address:  s.Address,
		Phone:    s.Phone,
		TaxID:    s.TaxID,
		Email:    s.Email,
		Currency: s.Currency,
		TaxRate:  s.TaxRate,
	}
}
