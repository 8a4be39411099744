package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimiter struct {
	decisions []RateDecision
	err       error
	keys      []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (RateDecision, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return RateDecision{}, f.err
	}
	d := f.decisions[0]
	f.decisions = f.decisions[1:]
	return d, nil
}

func newRateLimitedRouter(limiter RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", RateLimit(limiter, "uniseat:rl", 2, nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimitAllowsAndBlocks(t *testing.T) {
	limiter := &fakeLimiter{decisions: []RateDecision{
		{Allowed: true, Remaining: 1},
		{Allowed: false, Remaining: 0, RetryAfter: 1500 * time.Millisecond},
	}}
	router := newRateLimitedRouter(limiter)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "TOO_MANY_REQUESTS")

	require.Len(t, limiter.keys, 2)
	assert.Equal(t, "uniseat:rl:ip:192.0.2.1:user:anon:route:POST /auth/login", limiter.keys[0])
}

func TestRateLimitFailsOpen(t *testing.T) {
	router := newRateLimitedRouter(&fakeLimiter{err: errors.New("redis down")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitWithoutLimiter(t *testing.T) {
	router := newRateLimitedRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParseBucketResult(t *testing.T) {
	d, err := parseBucketResult([]interface{}{int64(0), int64(0), int64(2500)})
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 2500*time.Millisecond, d.RetryAfter)

	d, err = parseBucketResult([]interface{}{int64(1), "4", int64(0)})
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, int64(4), d.Remaining)

	_, err = parseBucketResult("garbage")
	assert.Error(t, err)
}
