package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRequestIDMiddleware request ID попадает в контекст запроса,
// в Gin context и в заголовок ответа
func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestIDMiddleware())

	var fromCtx, fromGin string
	router.GET("/ping", func(c *gin.Context) {
		fromCtx = GetRequestID(c.Request.Context())
		fromGin = GetRequestIDFromGin(c)
		c.Status(http.StatusOK)
	})

	// Входящий заголовок сохраняется как есть
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", fromCtx)
	assert.Equal(t, "abc-123", fromGin)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	// Без заголовка генерируется новый ID
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, fromCtx)
	assert.Equal(t, fromCtx, w.Header().Get("X-Request-ID"))
}

// TestGetRequestID пустой или чужой контекст дает пустую строку
func TestGetRequestID(t *testing.T) {
	assert.Empty(t, GetRequestID(nil))
	assert.Empty(t, GetRequestID(context.Background()))
	assert.Equal(t, "xyz", GetRequestID(SetRequestID(context.Background(), "xyz")))
}
