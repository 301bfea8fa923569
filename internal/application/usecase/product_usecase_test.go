package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ferreteria-api/internal/application/dto"
	"github.com/jhoicas/pos-ferreteria-api/internal/application/usecase"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"
)

// fakeProductRepo repositorio de productos en memoria.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(productID string, quantity int) error {
	r.products[productID].Stock -= quantity
	return nil
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProductUseCase_Create_Valido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		Name:  "Martillo",
		Price: dec("12.50"),
		Stock: 10,
		Code:  "MAR-001",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Martillo", out.Name)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, 10, out.Stock)
}

func TestProductUseCase_Create_SinNombreOPrecio_Falla(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Price: dec("5.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin nombre debe fallar")

	_, err = uc.Create(dto.CreateProductRequest{Name: "Tornillo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin precio debe fallar")
}

func TestProductUseCase_Update_Parcial(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Taladro", Price: dec("89.90"), Stock: 3,
	})
	require.NoError(t, err)

	// Solo cambia el stock; nombre y precio quedan intactos.
	newStock := 7
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Stock: &newStock})
	require.NoError(t, err)

	assert.Equal(t, "Taladro", out.Name)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("89.90")))
	assert.Equal(t, 7, out.Stock)
}

func TestProductUseCase_Update_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	name := "Algo"
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Delete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Llave", Price: dec("4.00")})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.Empty(t, repo.products)

	assert.ErrorIs(t, uc.Delete(""), domain.ErrInvalidInput)
}
