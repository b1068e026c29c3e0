package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bokaenkelt/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.MaxRequestsPerMin = 1

	router := gin.New()
	router.Use(RateLimitMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	request := func(ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Real-IP", ip)
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, request("203.0.113.7").Code)

	w := request("203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")

	// A different client is not affected by the first one's limiter.
	assert.Equal(t, http.StatusOK, request("203.0.113.8").Code)
}
