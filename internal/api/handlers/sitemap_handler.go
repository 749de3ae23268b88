package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sale-company-api-server/internal/store"
)

type SitemapHandler struct {
	Companies store.CompanyStore
	Brands    store.BrandStore
	Products  store.ProductStore
	BaseURL   string
	Logger    *zap.Logger
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// staticRoutes là các trang public cố định của site.
var staticRoutes = []string{"/", "/brands", "/companies", "/products", "/recruitment"}

// Sitemap sinh sitemap.xml từ các trang tĩnh cộng một URL cho mỗi
// company/brand/product. Lỗi truy vấn một collection chỉ làm thiếu nhóm
// URL đó chứ không làm hỏng cả sitemap.
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now().Format(time.RFC3339)

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.BaseURL + route, LastMod: now})
	}

	if companies, err := h.Companies.List(ctx); err == nil {
		for _, company := range companies {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/companies/%s", h.BaseURL, company.ID.Hex()),
				LastMod: company.UpdatedAt.Format(time.RFC3339),
			})
		}
	} else {
		h.Logger.Warn("sitemap: failed to list companies", zap.Error(err))
	}

	if brands, err := h.Brands.List(ctx, nil); err == nil {
		for _, brand := range brands {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/brands/%s", h.BaseURL, brand.ID.Hex()),
				LastMod: brand.UpdatedAt.Format(time.RFC3339),
			})
		}
	} else {
		h.Logger.Warn("sitemap: failed to list brands", zap.Error(err))
	}

	if products, err := h.Products.List(ctx, nil); err == nil {
		for _, product := range products {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/products/%s", h.BaseURL, product.ID.Hex()),
				LastMod: product.UpdatedAt.Format(time.RFC3339),
			})
		}
	} else {
		h.Logger.Warn("sitemap: failed to list products", zap.Error(err))
	}

	output, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.Logger.Error("sitemap: failed to marshal urlset", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to generate sitemap")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), output...))
}

// Robots trả về robots.txt: cho phép toàn bộ trang public, chặn admin/api.
func (h *SitemapHandler) Robots(c *gin.Context) {
	body := fmt.Sprintf(`User-agent: *
Allow: /
Disallow: /admin
Disallow: /api

Sitemap: %s/sitemap.xml
Host: %s
`, h.BaseURL, h.BaseURL)

	c.String(http.StatusOK, body)
}
