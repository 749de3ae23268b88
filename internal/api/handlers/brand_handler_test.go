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

func newBrandEnv() *testEnv {
	env := newTestEnv()
	h := &handlers.BrandHandler{Store: env.stores.Brands, Logger: env.logger}
	env.router.GET("/brands", h.ListBrands)
	env.router.GET("/brands/:id", h.GetBrand)
	env.router.POST("/brands", h.CreateBrand)
	env.router.PUT("/brands/:id", h.UpdateBrand)
	env.router.DELETE("/brands/:id", h.DeleteBrand)
	return env
}

func TestCreateBrandPopulatesCompany(t *testing.T) {
	env := newBrandEnv()
	company := &models.Company{Name: "Acme"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), company))

	w := env.do(t, http.MethodPost, "/brands", map[string]any{
		"name":      "Gold Label",
		"companyId": company.ID.Hex(),
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := dataOf(t, w)
	populated, ok := data["companyId"].(map[string]any)
	require.True(t, ok, "companyId should be a populated object: %s", w.Body.String())
	assert.Equal(t, "Acme", populated["name"])
	assert.Equal(t, company.ID.Hex(), populated["_id"])
}

func TestCreateBrandAcceptsDanglingCompany(t *testing.T) {
	env := newBrandEnv()

	// Tham chiếu companyId không tồn tại vẫn được chấp nhận,
	// nhưng populate về null khi đọc.
	w := env.do(t, http.MethodPost, "/brands", map[string]any{
		"name":      "Orphan",
		"companyId": primitive.NewObjectID().Hex(),
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := dataOf(t, w)
	assert.Nil(t, data["companyId"])
}

func TestCreateBrandValidation(t *testing.T) {
	env := newBrandEnv()

	w := env.do(t, http.MethodPost, "/brands", map[string]any{"name": "No Company"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/brands", map[string]any{"name": "Bad Ref", "companyId": "zzz"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBrandsFilterByCompany(t *testing.T) {
	env := newBrandEnv()
	acme := &models.Company{Name: "Acme"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), acme))
	globex := &models.Company{Name: "Globex"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), globex))

	_, err := env.stores.Brands.Create(testCtx(), &models.Brand{Name: "A1", CompanyID: acme.ID})
	require.NoError(t, err)
	_, err = env.stores.Brands.Create(testCtx(), &models.Brand{Name: "G1", CompanyID: globex.ID})
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/brands?companyId="+acme.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := listOf(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "A1", list[0].(map[string]any)["name"])

	w = env.do(t, http.MethodGet, "/brands", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, listOf(t, w), 2)
}

func TestUpdateBrandMoveToAnotherCompany(t *testing.T) {
	env := newBrandEnv()
	acme := &models.Company{Name: "Acme"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), acme))
	globex := &models.Company{Name: "Globex"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), globex))

	brand := &models.Brand{Name: "Movable", CompanyID: acme.ID}
	_, err := env.stores.Brands.Create(testCtx(), brand)
	require.NoError(t, err)

	w := env.do(t, http.MethodPut, "/brands/"+brand.ID.Hex(), map[string]any{"companyId": globex.ID.Hex()})

	require.Equal(t, http.StatusOK, w.Code)
	populated := dataOf(t, w)["companyId"].(map[string]any)
	assert.Equal(t, "Globex", populated["name"])
}

func TestDeleteBrandCascadesProducts(t *testing.T) {
	env := newBrandEnv()
	company := &models.Company{Name: "Acme"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), company))

	brand := &models.Brand{Name: "Doomed", CompanyID: company.ID}
	_, err := env.stores.Brands.Create(testCtx(), brand)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = env.stores.Products.Create(testCtx(), &models.Product{
			Name:    fmt.Sprintf("P%d", i),
			BrandID: brand.ID,
		})
		require.NoError(t, err)
	}

	w := env.do(t, http.MethodDelete, "/brands/"+brand.ID.Hex(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	payload := decode(t, w)
	assert.Equal(t, fmt.Sprintf("Deleted brand %q along with 2 products", "Doomed"), payload["message"])

	products, err := env.stores.Products.List(testCtx(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)

	// Company cha không bị xóa theo.
	_, err = env.stores.Companies.GetByID(testCtx(), company.ID)
	assert.NoError(t, err)
}

func TestGetBrandNotFound(t *testing.T) {
	env := newBrandEnv()

	w := env.do(t, http.MethodGet, "/brands/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, _, err := env.stores.Brands.Delete(testCtx(), primitive.NewObjectID())
	assert.ErrorIs(t, err, store.ErrNotFound)
}
