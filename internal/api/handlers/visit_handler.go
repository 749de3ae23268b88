package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/socket"
	"sale-company-api-server/internal/store"
)

type VisitHandler struct {
	Store  store.CounterStore
	Hub    *socket.Hub
	Logger *zap.Logger
}

// GetVisits trả về tổng lượt truy cập site hiện tại.
func (h *VisitHandler) GetVisits(c *gin.Context) {
	total, err := h.Store.Get(c.Request.Context(), models.SiteTotalKey)
	if err != nil {
		h.Logger.Error("failed to read visit counter", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to read visit counter"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"siteTotal": total})
}

// RecordVisit tăng counter "siteTotal" lên 1. UI chỉ gọi một lần cho mỗi
// browser session (session flag phía client); server không dedup thêm.
// Giá trị mới được broadcast cho các dashboard admin đang mở WebSocket.
func (h *VisitHandler) RecordVisit(c *gin.Context) {
	total, err := h.Store.Increment(c.Request.Context(), models.SiteTotalKey, 1)
	if err != nil {
		h.Logger.Error("failed to increment visit counter", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to increment visit counter"})
		return
	}

	if h.Hub != nil {
		if message, err := json.Marshal(gin.H{"siteTotal": total}); err == nil {
			h.Hub.Broadcast(message)
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "siteTotal": total})
}
