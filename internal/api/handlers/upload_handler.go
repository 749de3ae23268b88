package handlers

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sale-company-api-server/internal/s3"
)

// Giới hạn dung lượng và các loại ảnh cho phép.
const maxUploadSize = 10 << 20 // 10 MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type UploadHandler struct {
	Uploader *s3.Uploader
	Logger   *zap.Logger
}

// Upload nhận multipart form với field "file" và "folder" (logical folder,
// ví dụ "logos", "products"), đẩy lên S3 và trả về public URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing 'file' field in form data"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "File too large. Maximum size is 10MB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Could not read file"})
		return
	}
	defer file.Close()

	// Xác định content type bằng MIME sniffing 512 byte đầu,
	// không tin header của client.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Could not read file"})
		return
	}
	contentType := http.DetectContentType(buffer[:n])

	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("File type %q not allowed. Accepted: JPEG, PNG, WebP, GIF", contentType),
		})
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.Logger.Error("failed to rewind upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to process file"})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "uploads"
	}
	folder = unsafeFilenameChars.ReplaceAllString(folder, "")

	safeName := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(fileHeader.Filename), "_")
	objectKey := fmt.Sprintf("%s/%s-%s", folder, uuid.New().String(), safeName)

	url, err := h.Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		h.Logger.Error("failed to upload file to S3", zap.String("key", objectKey), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"url":         url,
			"key":         objectKey,
			"contentType": contentType,
			"size":        fileHeader.Size,
		},
	})
}
