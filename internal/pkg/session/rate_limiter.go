package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxLoginAttempts = 5
	loginWindow      = 15 * time.Minute
)

type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// CheckLoginAttempt checks if a login attempt is allowed.
// Allows up to 5 attempts per 15 minutes per IP+username pair.
func (r *RateLimiter) CheckLoginAttempt(ctx context.Context, ip, username string) (bool, int64, error) {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, username)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment login attempt: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		r.client.Expire(ctx, key, loginWindow)
	}

	allowed, remaining := loginAttemptAllowed(count)
	return allowed, remaining, nil
}

// loginAttemptAllowed decides whether the count-th attempt in the current
// window may proceed, and how many attempts remain after it.
func loginAttemptAllowed(count int64) (bool, int64) {
	remaining := int64(maxLoginAttempts) - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= maxLoginAttempts, remaining
}

// ResetLoginAttempts resets the login attempt counter.
func (r *RateLimiter) ResetLoginAttempts(ctx context.Context, ip, username string) error {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, username)
	return r.client.Del(ctx, key).Err()
}
