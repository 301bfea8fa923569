package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ferreteria-api/internal/application/dto"
	"github.com/jhoicas/pos-ferreteria-api/internal/application/sales"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/repository"
	apphttp "github.com/jhoicas/pos-ferreteria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el procesador de ventas
// ──────────────────────────────────────────────────────────────────────────────

type memSaleRepo struct {
	sales []*entity.Sale
	items []*entity.SaleItem
	stock map[string]int
}

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.sales = append(r.sales, sale)
	return nil
}

func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *memSaleRepo) List() ([]*repository.SaleWithCustomer, error) {
	out := make([]*repository.SaleWithCustomer, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, &repository.SaleWithCustomer{Sale: *s})
	}
	return out, nil
}

func (r *memSaleRepo) DecrementStock(productID string, quantity int) error {
	r.stock[productID] -= quantity
	return nil
}

// productPort adapta memSaleRepo al puerto de productos dentro de la tx.
type productPort struct{ store *memSaleRepo }

func (p productPort) Create(*entity.Product) error          { return nil }
func (p productPort) GetByID(string) (*entity.Product, error) { return nil, nil }
func (p productPort) List() ([]*entity.Product, error)      { return nil, nil }
func (p productPort) Update(*entity.Product) error          { return nil }
func (p productPort) Delete(string) error                   { return nil }
func (p productPort) DecrementStock(productID string, quantity int) error {
	return p.store.DecrementStock(productID, quantity)
}

// memTxRunner ejecuta la función directamente sobre el store compartido.
type memTxRunner struct{ store *memSaleRepo }

func (r memTxRunner) Run(_ context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	return fn(r.store, productPort{store: r.store})
}

func buildSalesApp(store *memSaleRepo) *fiber.App {
	uc := sales.NewSaleUseCase(memTxRunner{store: store}, store)
	h := apphttp.NewSaleHandler(uc)
	app := fiber.New()
	app.Post("/api/sales", h.Create)
	app.Get("/api/sales", h.List)
	return app
}

func postSale(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/sales
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleHandler_Create_VentaValida_Retorna201(t *testing.T) {
	store := &memSaleRepo{stock: map[string]int{"p1": 10, "p2": 4}}
	app := buildSalesApp(store)

	resp := postSale(t, app, `{
		"total": "35.50",
		"payment_method": "card",
		"document_type": "invoice",
		"items": [
			{"product_id": "p1", "quantity": 2, "unit_price": "10.25"},
			{"product_id": "p2", "quantity": 1, "unit_price": "15.00"}
		]
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.CreateSaleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.ID, "la respuesta debe incluir el id de la venta")

	// La venta quedó persistida con sus items y el stock descontado.
	require.Len(t, store.sales, 1)
	assert.Len(t, store.items, 2)
	assert.Equal(t, 8, store.stock["p1"])
	assert.Equal(t, 3, store.stock["p2"])
}

func TestSaleHandler_Create_SinTotal_Retorna400(t *testing.T) {
	store := &memSaleRepo{stock: map[string]int{}}
	app := buildSalesApp(store)

	resp := postSale(t, app, `{
		"items": [{"product_id": "p1", "quantity": 1, "unit_price": "5.00"}]
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.sales, "una petición inválida no debe persistir nada")
}

func TestSaleHandler_Create_SinItems_Retorna400(t *testing.T) {
	store := &memSaleRepo{stock: map[string]int{}}
	app := buildSalesApp(store)

	resp := postSale(t, app, `{"total": "10.00", "items": []}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.sales)
}

func TestSaleHandler_Create_CuerpoInvalido_Retorna400(t *testing.T) {
	store := &memSaleRepo{stock: map[string]int{}}
	app := buildSalesApp(store)

	resp := postSale(t, app, `{esto no es json}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSaleHandler_List_Retorna200(t *testing.T) {
	store := &memSaleRepo{stock: map[string]int{"p1": 5}}
	app := buildSalesApp(store)

	resp := postSale(t, app, `{
		"total": "5.00",
		"items": [{"product_id": "p1", "quantity": 1, "unit_price": "5.00"}]
	}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer listResp.Body.Close()

	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	var body []dto.SaleResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "5", body[0].Total.String())
	assert.Equal(t, "cash", body[0].PaymentMethod, "el método de pago por defecto es cash")
	assert.Equal(t, "ticket", body[0].DocumentType, "el tipo de documento por defecto es ticket")
}
