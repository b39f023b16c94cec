package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/smartretail/internal/core/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLimiter struct {
	calls int
	keys  []string
	err   error
}

func (l *countingLimiter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	l.calls++
	l.keys = append(l.keys, key)
	if l.err != nil {
		return false, l.err
	}
	return l.calls <= limit, nil
}

type observation struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	seen []observation
}

func (o *recordingObserver) ObserveRequest(method, route string, statusCode int, _ time.Duration) {
	o.seen = append(o.seen, observation{method, route, statusCode})
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handlers...)
	engine.GET("/items/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	limiter := &countingLimiter{}
	engine := newEngine(RateLimit(limiter, 2, time.Minute))

	for i := 0; i < 2; i++ {
		rec := serve(engine, httptest.NewRequest(http.MethodGet, "/items/1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/items/2", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())

	require.Len(t, limiter.keys, 3)
	assert.Equal(t, limiter.keys[0], limiter.keys[2], "key is per route, not per path")
	assert.Contains(t, limiter.keys[0], "GET:/items/:id:")
}

func TestRateLimit_FailsOpen(t *testing.T) {
	limiter := &countingLimiter{err: errors.New("redis down")}
	engine := newEngine(RateLimit(limiter, 1, time.Minute))

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestID(t *testing.T) {
	engine := newEngine(RequestID())

	t.Run("generates one", func(t *testing.T) {
		rec := serve(engine, httptest.NewRequest(http.MethodGet, "/items/1", nil))
		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.JSONEq(t, `{"request_id":"`+id+`"}`, rec.Body.String())
	})

	t.Run("keeps the caller's", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := serve(engine, req)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestMetrics(t *testing.T) {
	observer := &recordingObserver{}
	engine := newEngine(Metrics(observer))

	serve(engine, httptest.NewRequest(http.MethodGet, "/items/7", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Len(t, observer.seen, 2)
	assert.Equal(t, observation{"GET", "/items/:id", http.StatusOK}, observer.seen[0])
	assert.Equal(t, observation{"GET", "", http.StatusNotFound}, observer.seen[1])
}

func TestLogRequest_PassesResponseThrough(t *testing.T) {
	engine := newEngine(RequestID(), LogRequest())

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "request_id")
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, logger.LogLevelInfo, levelForStatus(http.StatusOK))
	assert.Equal(t, logger.LogLevelWarn, levelForStatus(http.StatusUnauthorized))
	assert.Equal(t, logger.LogLevelError, levelForStatus(http.StatusBadGateway))
}
