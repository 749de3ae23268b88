package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sale-company-api-server/internal/store/memstore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv gom router + memstore cho một test case.
type testEnv struct {
	router *gin.Engine
	stores *memstore.Stores
	logger *zap.Logger
}

func newTestEnv() *testEnv {
	return &testEnv{
		router: gin.New(),
		stores: memstore.New(),
		logger: zap.NewNop(),
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode đọc body JSON vào map để assert từng field.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	payload := decode(t, w)
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func listOf(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()

	payload := decode(t, w)
	data, ok := payload["data"].([]any)
	require.True(t, ok, "response has no data array: %s", w.Body.String())
	return data
}

func testCtx() context.Context {
	return context.Background()
}
