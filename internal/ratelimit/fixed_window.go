package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

const defaultPrefix = "auction:ratelimit"

// FixedWindowLimiter caps the number of actions per key in a fixed time
// window. Counters live in Redis so every API instance shares them.
type FixedWindowLimiter struct {
	limit  int
	window time.Duration

	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisFixedWindowLimiter creates a Redis-backed limiter allowing limit actions per window.
func NewRedisFixedWindowLimiter(addr, password, prefix string, limit int, window time.Duration) (*FixedWindowLimiter, error) {
	if limit <= 0 || window <= 0 {
		return nil, errors.New("rate limiter requires positive limit and window")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("rate limiter redis addr is required")
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &FixedWindowLimiter{
		limit:  limit,
		window: window,
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		prefix: prefix,
		now:    time.Now,
	}, nil
}

// Ping verifies the Redis connection
func (l *FixedWindowLimiter) Ping(ctx context.Context) error {
	if err := l.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping rate limiter redis: %w", err)
	}
	return nil
}

// Close releases the Redis client
func (l *FixedWindowLimiter) Close() error {
	return l.client.Close()
}

// Allow reports whether key is still within quota for the current window.
// Redis failures are returned with a false verdict so callers fail closed.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil {
		return false, errors.New("rate limiter is not configured")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}

	windowMs := l.window.Milliseconds()
	if windowMs <= 0 {
		return true, nil
	}
	slot := l.now().UTC().UnixMilli() / windowMs
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	count, err := fixedWindowScript.Run(ctx, l.client, []string{redisKey}, windowMs).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limiter script: %w", err)
	}
	return count <= int64(l.limit), nil
}
