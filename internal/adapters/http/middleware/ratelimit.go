package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"payconsig/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Store counts requests per key within a window. Implementations are
// injected at setup time so the counting backend can be swapped
// (per-process memory or shared Redis) and faked in tests.
type Store interface {
	// Increment bumps the counter for key and returns the new count.
	// The first hit in a window starts the TTL.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// ============================================================
// Memory store
// ============================================================

type memoryEntry struct {
	count     int64
	expiresAt time.Time
}

// MemoryStore is a per-process Store with lazy TTL eviction.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

// NewMemoryStore creates a memory-backed rate limit store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

// Increment implements Store
func (s *MemoryStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || now.After(entry.expiresAt) {
		s.entries[key] = &memoryEntry{count: 1, expiresAt: now.Add(window)}
		s.evictExpiredLocked(now)
		return 1, nil
	}

	entry.count++
	return entry.count, nil
}

// evictExpiredLocked drops stale entries. Called on window rollover so
// the map does not grow unbounded under churning client IPs.
func (s *MemoryStore) evictExpiredLocked(now time.Time) {
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}

// ============================================================
// Redis store
// ============================================================

// RedisStore is a Store backed by a shared Redis instance, for
// deployments with more than one API replica.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed rate limit store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Increment implements Store
func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := "ratelimit:" + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return 0, err
		}
	}

	return count, nil
}

// ============================================================
// Fiber handler
// ============================================================

// RateLimitConfig configures a rate limit handler
type RateLimitConfig struct {
	Store     Store
	Max       int64
	Window    time.Duration
	KeySuffix string
	Message   string
}

// RateLimit creates a fiber handler enforcing the configured limit.
// When the store itself fails the request is allowed through: losing
// rate limiting briefly beats failing every request.
func RateLimit(cfg RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.IP() + cfg.KeySuffix

		count, err := cfg.Store.Increment(c.UserContext(), key, cfg.Window)
		if err != nil {
			return c.Next()
		}

		if count > cfg.Max {
			c.Set("Retry-After", fmt.Sprintf("%d", int(cfg.Window.Seconds())))
			return response.Error(c, fiber.StatusTooManyRequests, cfg.Message)
		}

		return c.Next()
	}
}

// APIRateLimiter limits general API traffic to 100 requests per minute
// per IP
func APIRateLimiter(store Store) fiber.Handler {
	return RateLimit(RateLimitConfig{
		Store:   store,
		Max:     100,
		Window:  1 * time.Minute,
		Message: "Too many requests, please slow down",
	})
}

// AuthRateLimiter limits auth endpoints to 5 requests per minute per
// IP (signin, signup, refresh)
func AuthRateLimiter(store Store) fiber.Handler {
	return RateLimit(RateLimitConfig{
		Store:     store,
		Max:       5,
		Window:    1 * time.Minute,
		KeySuffix: "-auth",
		Message:   "Too many authentication attempts, please wait a minute",
	})
}
