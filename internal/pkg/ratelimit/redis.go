package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Counter is an atomic increment with expiry. *database.Redis implements it.
type Counter interface {
	IncrWithExpire(ctx context.Context, key string, expiration time.Duration) (int64, time.Duration, error)
}

// RedisStore is a fixed window limiter shared by every instance of the API.
type RedisStore struct {
	counter Counter
	prefix  string
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewRedisStore(counter Counter, prefix string, limit int, window time.Duration) *RedisStore {
	return &RedisStore{
		counter: counter,
		prefix:  prefix,
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (s *RedisStore) Allow(ctx context.Context, key string) (Decision, error) {
	n, ttl, err := s.counter.IncrWithExpire(ctx, s.prefix+key, s.window)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit counter: %w", err)
	}
	if ttl < 0 {
		ttl = s.window
	}

	d := Decision{
		Allowed: n <= int64(s.limit),
		Limit:   s.limit,
		ResetAt: s.now().Add(ttl),
	}
	if d.Allowed {
		d.Remaining = s.limit - int(n)
	}
	return d, nil
}
