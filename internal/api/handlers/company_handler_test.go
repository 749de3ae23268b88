package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sale-company-api-server/internal/api/handlers"
	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

func newCompanyEnv() *testEnv {
	env := newTestEnv()
	h := &handlers.CompanyHandler{Store: env.stores.Companies, Logger: env.logger}
	env.router.GET("/companies", h.ListCompanies)
	env.router.GET("/companies/:id", h.GetCompany)
	env.router.POST("/companies/:id/visits", h.RecordCompanyVisit)
	env.router.POST("/companies", h.CreateCompany)
	env.router.PUT("/companies/:id", h.UpdateCompany)
	env.router.DELETE("/companies/:id", h.DeleteCompany)
	return env
}

func TestCreateCompany(t *testing.T) {
	env := newCompanyEnv()

	w := env.do(t, http.MethodPost, "/companies", map[string]any{
		"name":        "Sale Company",
		"description": "Nhà phân phối",
		"website":     "https://example.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "Sale Company", data["name"])
	assert.Equal(t, float64(0), data["visitors"])
	assert.NotEmpty(t, data["_id"])
}

func TestCreateCompanyRequiresName(t *testing.T) {
	env := newCompanyEnv()

	w := env.do(t, http.MethodPost, "/companies", map[string]any{"description": "thiếu tên"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCompaniesNewestFirst(t *testing.T) {
	env := newCompanyEnv()
	require.NoError(t, env.stores.Companies.Create(testCtx(), &models.Company{Name: "First"}))
	require.NoError(t, env.stores.Companies.Create(testCtx(), &models.Company{Name: "Second"}))

	w := env.do(t, http.MethodGet, "/companies", nil)

	require.Equal(t, http.StatusOK, w.Code)
	list := listOf(t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].(map[string]any)["name"])
	assert.Equal(t, "First", list[1].(map[string]any)["name"])
}

func TestGetCompanyNotFound(t *testing.T) {
	env := newCompanyEnv()

	w := env.do(t, http.MethodGet, "/companies/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/companies/not-a-hex-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCompanyDoesNotCountVisit(t *testing.T) {
	env := newCompanyEnv()
	company := &models.Company{Name: "Steady"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), company))

	for i := 0; i < 3; i++ {
		w := env.do(t, http.MethodGet, "/companies/"+company.ID.Hex(), nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	got, err := env.stores.Companies.GetByID(testCtx(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Visitors)
}

func TestRecordCompanyVisit(t *testing.T) {
	env := newCompanyEnv()
	company := &models.Company{Name: "Popular"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), company))

	w := env.do(t, http.MethodPost, "/companies/"+company.ID.Hex()+"/visits", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), dataOf(t, w)["visitors"])

	w = env.do(t, http.MethodPost, "/companies/"+company.ID.Hex()+"/visits", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), dataOf(t, w)["visitors"])
}

func TestUpdateCompanyPartial(t *testing.T) {
	env := newCompanyEnv()
	company := &models.Company{Name: "Old Name", Description: "giữ nguyên"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), company))

	w := env.do(t, http.MethodPut, "/companies/"+company.ID.Hex(), map[string]any{"name": "New Name"})

	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "New Name", data["name"])
	assert.Equal(t, "giữ nguyên", data["description"])
}

func TestDeleteCompanyCascades(t *testing.T) {
	env := newCompanyEnv()

	company := &models.Company{Name: "Acme"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), company))
	other := &models.Company{Name: "Bystander"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), other))

	brand := &models.Brand{Name: "B1", CompanyID: company.ID}
	_, err := env.stores.Brands.Create(testCtx(), brand)
	require.NoError(t, err)

	product := &models.Product{Name: "P1", BrandID: brand.ID}
	_, err = env.stores.Products.Create(testCtx(), product)
	require.NoError(t, err)

	w := env.do(t, http.MethodDelete, "/companies/"+company.ID.Hex(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	assert.Equal(t, fmt.Sprintf("Deleted company %q along with 1 brands and 1 products", "Acme"), payload["message"])

	_, err = env.stores.Brands.GetByID(testCtx(), brand.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = env.stores.Products.GetByID(testCtx(), product.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Công ty khác không bị ảnh hưởng.
	_, err = env.stores.Companies.GetByID(testCtx(), other.ID)
	assert.NoError(t, err)
}

func TestDeleteCompanyNotFound(t *testing.T) {
	env := newCompanyEnv()

	w := env.do(t, http.MethodDelete, "/companies/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
