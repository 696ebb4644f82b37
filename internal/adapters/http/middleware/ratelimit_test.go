package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestMemoryStore_Increment(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := store.Increment(ctx, "1.2.3.4", time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != want {
			t.Errorf("count = %d, want %d", count, want)
		}
	}
}

func TestMemoryStore_WindowRollover(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Increment(ctx, "1.2.3.4", 10*time.Millisecond)
	store.Increment(ctx, "1.2.3.4", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	count, err := store.Increment(ctx, "1.2.3.4", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("count after window rollover = %d, want 1", count)
	}
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Increment(ctx, "1.2.3.4", time.Minute)
	store.Increment(ctx, "1.2.3.4", time.Minute)

	count, _ := store.Increment(ctx, "5.6.7.8", time.Minute)
	if count != 1 {
		t.Errorf("count for a fresh key = %d, want 1", count)
	}
}

type fixedStore struct {
	count int64
	err   error
}

func (s *fixedStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.count++
	return s.count, nil
}

func newRateLimitApp(store Store, max int64) *fiber.App {
	app := fiber.New()
	app.Use(RateLimit(RateLimitConfig{
		Store:   store,
		Max:     max,
		Window:  time.Minute,
		Message: "Too many requests",
	}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRateLimit_BlocksAboveMax(t *testing.T) {
	app := newRateLimitApp(&fixedStore{}, 2)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i+1, resp.StatusCode)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Errorf("status %d, want 429", resp.StatusCode)
	}
	if resp.Header.Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestRateLimit_StoreFailureAllowsRequest(t *testing.T) {
	app := newRateLimitApp(&fixedStore{err: errors.New("store down")}, 1)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status %d, want 200 when the store is unavailable", resp.StatusCode)
	}
}
