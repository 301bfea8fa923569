package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-ferreteria-api/internal/application/dto"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/repository"
)

// CustomerUseCase aplica reglas de negocio para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso con el puerto de persistencia.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. El nombre es obligatorio.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		Name:       in.Name,
		DocumentID: in.DocumentID,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{
		ID:         customer.ID,
		Name:       customer.Name,
		DocumentID: customer.DocumentID,
		Email:      customer.Email,
		Phone:      customer.Phone,
		Address:    customer.Address,
		CreatedAt:  customer.CreatedAt,
	}, nil
}

// List lista clientes por nombre con el acumulado de compras de cada uno.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.CustomerResponse{
			ID:             c.ID,
			Name:           c.Name,
			DocumentID:     c.DocumentID,
			Email:          c.Email,
			Phone:          c.Phone,
			Address:        c.Address,
			TotalPurchases: c.TotalPurchases,
			CreatedAt:      c.CreatedAt,
		})
	}
	return out, nil
}

// Update aplica una actualización parcial sobre el cliente.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.DocumentID != nil {
		customer.DocumentID = *in.DocumentID
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	customer.UpdatedAt = time.Now()

	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{
		ID:         customer.ID,
		Name:       customer.Name,
		DocumentID: customer.DocumentID,
		Email:      customer.Email,
		Phone:      customer.Phone,
		Address:    customer.Address,
		CreatedAt:  customer.CreatedAt,
	}, nil
}

// Delete elimina un cliente por ID.
func (uc *CustomerUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(id)
}
