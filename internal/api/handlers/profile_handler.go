package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type ProfileHandler struct {
	Store  store.ProfileStore
	Logger *zap.Logger
}

// UpsertProfileRequest là toàn bộ nội dung profile; editor luôn PUT cả
// document. Version là optional: gửi kèm để bật optimistic concurrency,
// bỏ trống thì ghi đè kiểu last-write-wins như trước.
type UpsertProfileRequest struct {
	CompanyInfo         models.CompanyInfo         `json:"companyInfo"`
	CompanyIntroduction models.CompanyIntroduction `json:"companyIntroduction"`
	CoreValueHeader     models.CoreValueHeader     `json:"coreValueHeader"`
	CoreValues          []models.CoreValue         `json:"coreValues"`
	LeadershipMessage   models.LeadershipMessage   `json:"leadershipMessage"`
	ContactCTA          models.ContactCTA          `json:"contactCTA"`
	Logo                string                     `json:"logo"`
	Name                string                     `json:"name"`
	Version             *int64                     `json:"version"`
}

// GetProfile trả về singleton profile, data là null khi chưa từng lưu.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.Store.Get(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to get company profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve company profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}

// UpsertProfile ghi đè toàn bộ profile document (slug luôn là "default").
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.CoreValues == nil {
		req.CoreValues = []models.CoreValue{}
	}
	if req.CompanyIntroduction.Partners == nil {
		req.CompanyIntroduction.Partners = []models.Partner{}
	}

	profile := &models.CompanyProfile{
		CompanyInfo:         req.CompanyInfo,
		CompanyIntroduction: req.CompanyIntroduction,
		CoreValueHeader:     req.CoreValueHeader,
		CoreValues:          req.CoreValues,
		LeadershipMessage:   req.LeadershipMessage,
		ContactCTA:          req.ContactCTA,
		Logo:                req.Logo,
		Name:                req.Name,
		UpdatedBy:           c.GetString("admin_email"),
	}

	saved, err := h.Store.Upsert(c.Request.Context(), profile, req.Version)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Profile was modified by someone else, reload and try again"})
			return
		}
		h.Logger.Error("failed to upsert company profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save company profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}
