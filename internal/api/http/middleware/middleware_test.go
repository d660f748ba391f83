package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartal/portfolio/internal/logging"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/api/ping", func(c *gin.Context) {
		c.String(http.StatusOK, logging.RequestID(c.Request.Context()))
	})
	return r
}

func do(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequestID_EchoesIncoming(t *testing.T) {
	r := newEngine(RequestIDMiddleware())

	rr := do(r, http.MethodGet, "/api/ping", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", rr.Body.String(), "id reaches the request context")
}

func TestRequestID_Generates(t *testing.T) {
	r := newEngine(RequestIDMiddleware())

	rr := do(r, http.MethodGet, "/api/ping", nil)
	rid := rr.Header().Get(RequestIDHeader)
	assert.Len(t, rid, 36)
	assert.Equal(t, rid, rr.Body.String())

	rr = do(r, http.MethodGet, "/api/ping", map[string]string{RequestIDHeader: strings.Repeat("x", 200)})
	assert.Len(t, rr.Header().Get(RequestIDHeader), 36, "oversized ids are replaced")
}

func TestSecurityHeaders(t *testing.T) {
	rr := do(newEngine(SecurityHeaders()), http.MethodGet, "/api/ping", nil)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", rr.Header().Get("Referrer-Policy"))
}

func TestCORS_AllowAll(t *testing.T) {
	r := newEngine(CORS(nil))

	// httptest requests carry Host example.com, so that origin counts as same-origin.
	rr := do(r, http.MethodGet, "/api/ping", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = do(r, http.MethodOptions, "/api/ping", map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": http.MethodPut,
	})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestCORS_Restricted(t *testing.T) {
	r := newEngine(CORS([]string{"https://bartal.dev"}))

	rr := do(r, http.MethodGet, "/api/ping", map[string]string{"Origin": "https://bartal.dev"})
	assert.Equal(t, "https://bartal.dev", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = do(r, http.MethodGet, "/api/ping", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRateLimiter(t *testing.T) {
	l := NewRateLimiter(1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("2.2.2.2"), "buckets are per IP")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("1.1.1.1"))

	now = now.Add(2 * idleLimiterTTL)
	l.Allow("3.3.3.3")
	l.mu.Lock()
	_, kept := l.visitors["1.1.1.1"]
	l.mu.Unlock()
	assert.False(t, kept, "idle visitors are collected")
}

func TestRateLimiter_Middleware(t *testing.T) {
	l := NewRateLimiter(0.001, 1)
	r := newEngine(l.Middleware())

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/ping", nil).Code)

	rr := do(r, http.MethodGet, "/api/ping", nil)
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, rr.Body.String())
}

func TestMetrics(t *testing.T) {
	m := NewMetrics("portfolio-test")
	r := newEngine(m.Middleware())
	r.GET("/api/projects/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	do(r, http.MethodGet, "/api/ping", nil)
	do(r, http.MethodGet, "/api/projects/1", nil)
	do(r, http.MethodGet, "/api/projects/2", nil)
	do(r, http.MethodGet, "/missing", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests().WithLabelValues("GET", "/api/ping", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests().WithLabelValues("GET", "/api/projects/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests().WithLabelValues("GET", "unmatched", "404")))

	rr := do(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_request_duration_seconds")
}
