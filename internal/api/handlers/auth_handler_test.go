package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sale-company-api-server/internal/api/handlers"
	"sale-company-api-server/internal/auth"
	"sale-company-api-server/internal/models"
)

var testSecret = []byte("test-secret")

func newAuthEnv() *testEnv {
	env := newTestEnv()
	h := &handlers.AuthHandler{Store: env.stores.Admins, JWTSecret: testSecret, Logger: env.logger}
	env.router.POST("/auth/login", h.Login)
	env.router.POST("/auth/register", h.Register)
	return env
}

func TestRegisterAndLogin(t *testing.T) {
	env := newAuthEnv()

	w := env.do(t, http.MethodPost, "/auth/register", map[string]any{
		"email":    "Admin@Example.com",
		"password": "secret123",
		"name":     "Quản trị viên",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := dataOf(t, w)
	assert.NotEmpty(t, data["token"])

	admin := data["admin"].(map[string]any)
	// Email được chuẩn hóa lowercase, role mặc định là admin.
	assert.Equal(t, "admin@example.com", admin["email"])
	assert.Equal(t, models.RoleAdmin, admin["role"])
	// Password (kể cả bản hash) không bao giờ lộ ra response.
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")

	// Token phải parse được bằng đúng secret của server.
	claims, err := auth.ParseJWT(testSecret, data["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)

	w = env.do(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, dataOf(t, w)["token"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newAuthEnv()

	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)
	require.NoError(t, env.stores.Admins.Create(testCtx(), &models.Admin{
		Email:    "admin@example.com",
		Password: hash,
		Name:     "Admin",
		Role:     models.RoleAdmin,
	}))

	// Sai mật khẩu và email không tồn tại trả về cùng một thông báo.
	w := env.do(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    "admin@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = env.do(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newAuthEnv()

	body := map[string]any{
		"email":    "dup@example.com",
		"password": "secret123",
		"name":     "First",
	}
	w := env.do(t, http.MethodPost, "/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := newAuthEnv()

	// Mật khẩu quá ngắn
	w := env.do(t, http.MethodPost, "/auth/register", map[string]any{
		"email":    "short@example.com",
		"password": "abc",
		"name":     "Short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Role không hợp lệ
	w = env.do(t, http.MethodPost, "/auth/register", map[string]any{
		"email":    "role@example.com",
		"password": "secret123",
		"name":     "Role",
		"role":     "owner",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
