package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sale-company-api-server/internal/api/handlers"
	"sale-company-api-server/internal/models"
)

func newSitemapEnv(baseURL string) *testEnv {
	env := newTestEnv()
	h := &handlers.SitemapHandler{
		Companies: env.stores.Companies,
		Brands:    env.stores.Brands,
		Products:  env.stores.Products,
		BaseURL:   baseURL,
		Logger:    env.logger,
	}
	env.router.GET("/sitemap.xml", h.Sitemap)
	env.router.GET("/robots.txt", h.Robots)
	return env
}

func TestSitemapIncludesStaticAndEntityURLs(t *testing.T) {
	env := newSitemapEnv("https://example.com")

	company := &models.Company{Name: "Acme"}
	require.NoError(t, env.stores.Companies.Create(testCtx(), company))
	brand := &models.Brand{Name: "Gold", CompanyID: company.ID}
	_, err := env.stores.Brands.Create(testCtx(), brand)
	require.NoError(t, err)
	product := &models.Product{Name: "Noodles", BrandID: brand.ID}
	_, err = env.stores.Products.Create(testCtx(), product)
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/sitemap.xml", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"), "sitemap should start with XML declaration")
	assert.Contains(t, body, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)

	for _, loc := range []string{
		"<loc>https://example.com/</loc>",
		"<loc>https://example.com/recruitment</loc>",
		"<loc>https://example.com/companies/" + company.ID.Hex() + "</loc>",
		"<loc>https://example.com/brands/" + brand.ID.Hex() + "</loc>",
		"<loc>https://example.com/products/" + product.ID.Hex() + "</loc>",
	} {
		assert.Contains(t, body, loc)
	}
}

func TestSitemapEmptyDatabaseStillListsStaticPages(t *testing.T) {
	env := newSitemapEnv("https://example.com")

	w := env.do(t, http.MethodGet, "/sitemap.xml", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<loc>https://example.com/brands</loc>")
}

func TestRobots(t *testing.T) {
	env := newSitemapEnv("https://example.com")

	w := env.do(t, http.MethodGet, "/robots.txt", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Disallow: /admin")
	assert.Contains(t, body, "Sitemap: https://example.com/sitemap.xml")
}
