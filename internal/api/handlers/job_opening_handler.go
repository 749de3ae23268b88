package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"sale-company-api-server/internal/models"
	"sale-company-api-server/internal/store"
)

type JobOpeningHandler struct {
	Store  store.JobOpeningStore
	Logger *zap.Logger
}

type CreateJobOpeningRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description" binding:"required,max=2000"`
	Requirements string `json:"requirements" binding:"required,max=3000"`
	SalaryText   string `json:"salaryText" binding:"required,max=100"`
	QuantityText string `json:"quantityText" binding:"required,max=50"`
	Location     string `json:"location" binding:"required,max=200"`
	Experience   string `json:"experience" binding:"required,max=100"`
	Deadline     string `json:"deadline" binding:"required"`
	Status       string `json:"status" binding:"omitempty,oneof=active inactive closed"`
}

type UpdateJobOpeningRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	Requirements *string `json:"requirements" binding:"omitempty,max=3000"`
	SalaryText   *string `json:"salaryText" binding:"omitempty,max=100"`
	QuantityText *string `json:"quantityText" binding:"omitempty,max=50"`
	Location     *string `json:"location" binding:"omitempty,max=200"`
	Experience   *string `json:"experience" binding:"omitempty,max=100"`
	Deadline     *string `json:"deadline"`
	Status       *string `json:"status" binding:"omitempty,oneof=active inactive closed"`
}

// parseDeadline chấp nhận RFC3339 hoặc dạng ngày của input HTML (2006-01-02).
func parseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// ListJobOpenings trả về tin tuyển dụng, postedAt giảm dần; hỗ trợ
// ?status=... và ?limit=N.
func (h *JobOpeningHandler) ListJobOpenings(c *gin.Context) {
	status := c.Query("status")

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	jobs, err := h.Store.List(c.Request.Context(), status, limit)
	if err != nil {
		h.Logger.Error("failed to list job openings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to query job openings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": jobs})
}

func (h *JobOpeningHandler) GetJobOpening(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid job opening ID"})
		return
	}

	job, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Job opening not found"})
			return
		}
		h.Logger.Error("failed to get job opening", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve job opening"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

func (h *JobOpeningHandler) CreateJobOpening(c *gin.Context) {
	var req CreateJobOpeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid deadline date"})
		return
	}

	job := &models.JobOpening{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryText:   req.SalaryText,
		QuantityText: req.QuantityText,
		Location:     req.Location,
		Experience:   req.Experience,
		Deadline:     deadline,
		Status:       req.Status,
	}
	if err := h.Store.Create(c.Request.Context(), job); err != nil {
		h.Logger.Error("failed to create job opening", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create job opening"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": job})
}

func (h *JobOpeningHandler) UpdateJobOpening(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid job opening ID"})
		return
	}

	var req UpdateJobOpeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	patch := models.JobOpeningPatch{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryText:   req.SalaryText,
		QuantityText: req.QuantityText,
		Location:     req.Location,
		Experience:   req.Experience,
		Status:       req.Status,
	}
	if req.Deadline != nil {
		deadline, err := parseDeadline(*req.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid deadline date"})
			return
		}
		patch.Deadline = &deadline
	}

	job, err := h.Store.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Job opening not found"})
			return
		}
		h.Logger.Error("failed to update job opening", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update job opening"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

func (h *JobOpeningHandler) DeleteJobOpening(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid job opening ID"})
		return
	}

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Job opening not found"})
			return
		}
		h.Logger.Error("failed to delete job opening", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete job opening"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job opening deleted successfully"})
}
