package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Justcode790/UniSeat-backend/internal/models"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
	"github.com/Justcode790/UniSeat-backend/pkg/response"
)

// RateDecision is the outcome of consuming one token from a bucket.
type RateDecision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// RateLimiter consumes a token for key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateDecision, error)
}

// TokenBucketConfig tunes a RedisTokenBucket.
type TokenBucketConfig struct {
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

// tokenBucketScript refills in whole intervals and consumes one token atomically.
// It returns {allowed, tokens, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RedisTokenBucket is a RateLimiter whose buckets live in Redis hashes.
type RedisTokenBucket struct {
	client *redis.Client
	cfg    TokenBucketConfig
}

// NewRedisTokenBucket constructs a limiter backed by client.
func NewRedisTokenBucket(client *redis.Client, cfg TokenBucketConfig) *RedisTokenBucket {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 10
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	return &RedisTokenBucket{client: client, cfg: cfg}
}

// Allow implements RateLimiter.
func (b *RedisTokenBucket) Allow(ctx context.Context, key string) (RateDecision, error) {
	args := []interface{}{
		time.Now().UnixMilli(),
		b.cfg.Capacity,
		b.cfg.RefillTokens,
		b.cfg.RefillInterval.Milliseconds(),
		int64(b.cfg.TTL / time.Second),
	}
	raw, err := tokenBucketScript.Run(ctx, b.client, []string{key}, args...).Result()
	if err != nil {
		return RateDecision{}, fmt.Errorf("run token bucket script: %w", err)
	}
	return parseBucketResult(raw)
}

func parseBucketResult(raw interface{}) (RateDecision, error) {
	values, ok := raw.([]interface{})
	if !ok || len(values) != 3 {
		return RateDecision{}, fmt.Errorf("unexpected token bucket result %#v", raw)
	}
	return RateDecision{
		Allowed:    asInt64(values[0]) == 1,
		Remaining:  asInt64(values[1]),
		RetryAfter: time.Duration(asInt64(values[2])) * time.Millisecond,
	}, nil
}

func asInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// RateLimit rejects requests once the caller's bucket for the route is empty.
// Limiter errors let the request through.
func RateLimit(limiter RateLimiter, prefix string, capacity int, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := rateKey(prefix, c)
		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(capacity))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			secs := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			response.Error(c, appErrors.Clone(appErrors.ErrTooManyRequests, "rate limit exceeded"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func rateKey(prefix string, c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	user := "anon"
	if claims, ok := c.Get(ContextUserKey); ok {
		if typed, ok := claims.(*models.JWTClaims); ok && typed.UserID != "" {
			user = typed.UserID
		}
	}
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return strings.Join([]string{prefix, "ip", ip, "user", user, "route", c.Request.Method + " " + route}, ":")
}
