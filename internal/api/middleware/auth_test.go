package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sale-company-api-server/internal/api/middleware"
	"sale-company-api-server/internal/auth"
)

var testSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(roles ...string) *gin.Engine {
	router := gin.New()
	group := router.Group("/")
	group.Use(middleware.Authenticate(testSecret))
	if len(roles) > 0 {
		group.Use(middleware.Authorize(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString("admin_email"),
			"role":  c.GetString("admin_role"),
		})
	})
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	w := request(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateBadFormat(t *testing.T) {
	token, err := auth.GenerateJWT(testSecret, "id", "a@b.c", "A", "admin")
	require.NoError(t, err)

	// Thiếu tiền tố "Bearer "
	w := request(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	otherToken, err := auth.GenerateJWT([]byte("other-secret"), "id", "a@b.c", "A", "admin")
	require.NoError(t, err)

	w := request(protectedRouter(), "Bearer "+otherToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateSetsAdminContext(t *testing.T) {
	token, err := auth.GenerateJWT(testSecret, "id", "admin@example.com", "Admin", "admin")
	require.NoError(t, err)

	w := request(protectedRouter(), "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}

func TestAuthorizeAllowsListedRole(t *testing.T) {
	token, err := auth.GenerateJWT(testSecret, "id", "a@b.c", "A", "super_admin")
	require.NoError(t, err)

	w := request(protectedRouter("admin", "super_admin"), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorizeRejectsOtherRole(t *testing.T) {
	token, err := auth.GenerateJWT(testSecret, "id", "a@b.c", "A", "viewer")
	require.NoError(t, err)

	w := request(protectedRouter("admin", "super_admin"), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
