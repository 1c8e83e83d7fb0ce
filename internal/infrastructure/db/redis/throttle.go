package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts   = 10
	defaultAttemptWindow = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per email in Redis.
// Key format: login_attempts:<normalized_email>, expiring after the
// window so a quiet account unlocks itself.
type LoginThrottle struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLoginThrottle creates a throttle blocking after max failures
// within window. Non-positive arguments fall back to defaults.
func NewLoginThrottle(client *redis.Client, max int, window time.Duration) *LoginThrottle {
	if max <= 0 {
		max = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultAttemptWindow
	}
	return &LoginThrottle{client: client, max: int64(max), window: window}
}

// TooManyAttempts reports whether the email has exhausted its failure
// budget.
func (t *LoginThrottle) TooManyAttempts(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.max, nil
}

// RecordFailure counts one failed attempt. The window starts at the
// first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "login_attempts:" + email
}
