package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNilRateLimiterIsNoOp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var limiter *RateLimiter
	router.GET("/ping", limiter.Middleware(ByClientIP), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterWithoutRedisIsNoOp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	limiter := NewRateLimiter(nil, RateLimitConfig{Limit: 1, KeyPrefix: "rate_limit:test"})
	router.GET("/ping", limiter.Middleware(ByClientIP), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestByUserIDFallsBackToClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "203.0.113.9:1234"
	assert.Equal(t, "203.0.113.9", ByUserID(c))

	c.Set(ContextUserID, "507f1f77bcf86cd799439011")
	assert.Equal(t, "507f1f77bcf86cd799439011", ByUserID(c))
}
