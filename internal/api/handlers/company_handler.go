package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type CompanyHandler struct {
	Store  store.CompanyStore
	Logger *zap.Logger
}

type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
	Logo        string `json:"logo"`
	Website     string `json:"website"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Logo        *string `json:"logo"`
	Website     *string `json:"website"`
}

// ListCompanies trả về tất cả công ty, mới tạo trước.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.Store.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list companies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to query companies"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": companies})
}

// GetCompany trả về một công ty theo id. Không còn side effect tăng
// visitors ở đây; lượt xem được ghi nhận qua RecordCompanyVisit.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid company ID"})
		return
	}

	company, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Company not found"})
			return
		}
		h.Logger.Error("failed to get company", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve company"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": company})
}

// RecordCompanyVisit tăng visitors của công ty lên 1 (atomic) và trả về
// giá trị mới. UI gọi một lần cho mỗi session khi mở trang chi tiết.
func (h *CompanyHandler) RecordCompanyVisit(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid company ID"})
		return
	}

	visitors, err := h.Store.RecordVisit(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Company not found"})
			return
		}
		h.Logger.Error("failed to record company visit", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to record visit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"visitors": visitors}})
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	company := &models.Company{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
	}
	if err := h.Store.Create(c.Request.Context(), company); err != nil {
		h.Logger.Error("failed to create company", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create company"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": company})
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid company ID"})
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	patch := models.CompanyPatch{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
	}
	company, err := h.Store.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Company not found"})
			return
		}
		h.Logger.Error("failed to update company", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update company"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": company})
}

// DeleteCompany xóa công ty cùng toàn bộ brand và product phụ thuộc,
// trả về số dependent đã xóa trong message.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid company ID"})
		return
	}

	company, result, err := h.Store.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Company not found"})
			return
		}
		h.Logger.Error("failed to delete company", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete company"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    company,
		"message": fmt.Sprintf("Deleted company %q along with %d brands and %d products", company.Name, result.Brands, result.Products),
	})
}
