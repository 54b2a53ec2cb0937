package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	limit := LoginRateLimit(2, time.Minute)
	router.POST("/login", limit, func(c *gin.Context) {
		c.String(200, "ok")
	})
	router.POST("/register", limit, func(c *gin.Context) {
		c.String(200, "ok")
	})

	doReq := func(path, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", path, nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, 200, doReq("/login", "192.168.1.1").Code)
	assert.Equal(t, 200, doReq("/login", "192.168.1.1").Code)
	w3 := doReq("/login", "192.168.1.1")
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	assert.Contains(t, w3.Body.String(), "频繁")

	// 不同 IP、不同路由互不影响
	assert.Equal(t, 200, doReq("/login", "192.168.1.2").Code)
	assert.Equal(t, 200, doReq("/register", "192.168.1.1").Code)
}

func TestSlidingWindow(t *testing.T) {
	w := newSlidingWindow(1, time.Second)
	now := time.Now()

	assert.True(t, w.allow("a", now))
	assert.False(t, w.allow("a", now.Add(500*time.Millisecond)))
	// 窗口过去后恢复
	assert.True(t, w.allow("a", now.Add(1500*time.Millisecond)))

	w.sweep(now.Add(10 * time.Second))
	assert.Empty(t, w.hits)
}
