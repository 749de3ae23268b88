package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sale-company-api-server/internal/api/handlers"
)

func newUploadEnv() *testEnv {
	env := newTestEnv()
	// Uploader để nil: các test dưới đây chỉ đi vào nhánh từ chối request,
	// xảy ra trước khi chạm tới S3.
	h := &handlers.UploadHandler{Uploader: nil, Logger: env.logger}
	env.router.POST("/uploads", h.Upload)
	return env
}

func multipartBody(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadRequiresFileField(t *testing.T) {
	env := newUploadEnv()

	buf, contentType := multipartBody(t, "attachment", "x.png", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/uploads", buf)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing 'file' field")
}

func TestUploadRejectsNonImageContent(t *testing.T) {
	env := newUploadEnv()

	// Nội dung text: MIME sniffing phát hiện không phải ảnh dù tên file là .png.
	buf, contentType := multipartBody(t, "file", "fake.png", []byte("<html>not an image</html>"))
	req := httptest.NewRequest(http.MethodPost, "/uploads", buf)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not allowed")
}
