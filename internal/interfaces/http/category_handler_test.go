package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ferreteria-api/internal/application/dto"
	"github.com/jhoicas/pos-ferreteria-api/internal/application/usecase"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"
	apphttp "github.com/jhoicas/pos-ferreteria-api/internal/interfaces/http"
)

// memCategoryRepo repositorio en memoria con nombre único, como la tabla real.
type memCategoryRepo struct {
	byName map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byName: map[string]*entity.Category{}}
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	if _, ok := r.byName[c.Name]; ok {
		return domain.ErrDuplicate
	}
	r.byName[c.Name] = c
	return nil
}

func (r *memCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byName))
	for _, c := range r.byName {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategoryRepo) Delete(id string) error {
	for name, c := range r.byName {
		if c.ID == id {
			delete(r.byName, name)
		}
	}
	return nil
}

func buildCategoryApp(repo *memCategoryRepo) *fiber.App {
	h := apphttp.NewCategoryHandler(usecase.NewCategoryUseCase(repo))
	app := fiber.New()
	app.Post("/api/categories", h.Create)
	app.Get("/api/categories", h.List)
	return app
}

func TestCategoryHandler_Create_Retorna201(t *testing.T) {
	app := buildCategoryApp(newMemCategoryRepo())

	resp := postJSON(t, app, "/api/categories", `{"name": "Herramientas"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.CategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "Herramientas", body.Name)
}

func TestCategoryHandler_Create_NombreDuplicado_Retorna409(t *testing.T) {
	app := buildCategoryApp(newMemCategoryRepo())

	resp := postJSON(t, app, "/api/categories", `{"name": "Herramientas"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp2 := postJSON(t, app, "/api/categories", `{"name": "Herramientas"}`)
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusConflict, resp2.StatusCode,
		"el nombre de categoría es único")

	body, _ := io.ReadAll(resp2.Body)
	assert.Contains(t, string(body), "DUPLICATE")
}

func TestCategoryHandler_Create_SinNombre_Retorna400(t *testing.T) {
	app := buildCategoryApp(newMemCategoryRepo())

	resp := postJSON(t, app, "/api/categories", `{}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoryHandler_List_Retorna200(t *testing.T) {
	app := buildCategoryApp(newMemCategoryRepo())

	resp := postJSON(t, app, "/api/categories", `{"name": "Pinturas"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer listResp.Body.Close()

	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	var body []dto.CategoryResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Pinturas", body[0].Name)
}
