package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/config"
	"travel-assistant/pkg/log"
)

func newEngine(m Middleware) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(m.RequestID(), m.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})
	return r, &seen
}

func TestRequestID_Generated(t *testing.T) {
	r, seen := newEngine(New(log.NewNop(), config.RateLimitConfig{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(HeaderRequestID)
	assert.Len(t, id, 36)
	assert.Equal(t, id, *seen)
}

func TestRequestID_Propagated(t *testing.T) {
	r, seen := newEngine(New(log.NewNop(), config.RateLimitConfig{}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", *seen)
}

func TestRateLimit(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 1, Burst: 2})
	r, _ := newEngine(m)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Another client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{Enabled: false, RequestsPerMin: 1, Burst: 1})
	assert.Nil(t, m.limiter)

	r, _ := newEngine(m)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
