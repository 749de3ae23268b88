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

type BrandHandler struct {
	Store  store.BrandStore
	Logger *zap.Logger
}

type CreateBrandRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Logo        string `json:"logo"`
	// CompanyID bắt buộc nhưng KHÔNG kiểm tra tồn tại: tham chiếu dangling
	// được chấp nhận và populate thành null khi đọc (giữ nguyên hành vi
	// hiện tại, xem Open Questions trong DESIGN.md).
	CompanyID string `json:"companyId" binding:"required"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Logo        *string `json:"logo"`
	CompanyID   *string `json:"companyId"`
}

// ListBrands trả về brand đã populate company; lọc theo ?companyId nếu có.
func (h *BrandHandler) ListBrands(c *gin.Context) {
	var companyID *primitive.ObjectID
	if raw := c.Query("companyId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid company ID"})
			return
		}
		companyID = &id
	}

	brands, err := h.Store.List(c.Request.Context(), companyID)
	if err != nil {
		h.Logger.Error("failed to list brands", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to query brands"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": brands})
}

func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid brand ID"})
		return
	}

	brand, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Brand not found"})
			return
		}
		h.Logger.Error("failed to get brand", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve brand"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": brand})
}

func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	companyID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid company ID"})
		return
	}

	brand := &models.Brand{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		CompanyID:   companyID,
	}
	detail, err := h.Store.Create(c.Request.Context(), brand)
	if err != nil {
		h.Logger.Error("failed to create brand", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create brand"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": detail})
}

func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid brand ID"})
		return
	}

	var req UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	patch := models.BrandPatch{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
	}
	if req.CompanyID != nil {
		companyID, err := primitive.ObjectIDFromHex(*req.CompanyID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid company ID"})
			return
		}
		patch.CompanyID = &companyID
	}

	brand, err := h.Store.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Brand not found"})
			return
		}
		h.Logger.Error("failed to update brand", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update brand"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": brand})
}

// DeleteBrand xóa brand cùng toàn bộ product của nó; company không bị
// ảnh hưởng.
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid brand ID"})
		return
	}

	brand, deletedProducts, err := h.Store.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Brand not found"})
			return
		}
		h.Logger.Error("failed to delete brand", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete brand"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    brand,
		"message": fmt.Sprintf("Deleted brand %q along with %d products", brand.Name, deletedProducts),
	})
}
