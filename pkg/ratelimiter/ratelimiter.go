package ratelimiter

import (
	"context"
	"fmt"
	"math"
	"time"

	"anoa.com/usherhire/pkg/apperror"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	ScopeApply  = "apply"
	ScopeReview = "review"
)

type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	return e.Message
}

func (e *RateLimitError) Unwrap() error {
	return apperror.ErrRateLimitExceeded
}

// Limiter allows one action per scope and target per window for each user.
// Target is the resource acted on, so applying to two different events or
// reviewing two different bookings never share a window.
type Limiter interface {
	Acquire(ctx context.Context, userID uuid.UUID, scope string, target uuid.UUID, window time.Duration) error
	Release(ctx context.Context, userID uuid.UUID, scope string, target uuid.UUID) error
}

type redisLimiter struct {
	rdb *redis.Client
}

// New returns a Redis backed limiter. A nil client disables limiting.
func New(rdb *redis.Client) Limiter {
	return &redisLimiter{rdb: rdb}
}

func Key(userID uuid.UUID, scope string, target uuid.UUID) string {
	return fmt.Sprintf("rate_limit:user:%s:%s:%s", userID.String(), scope, target.String())
}

func (l *redisLimiter) Acquire(ctx context.Context, userID uuid.UUID, scope string, target uuid.UUID, window time.Duration) error {
	if l.rdb == nil || window <= 0 {
		return nil
	}

	key := Key(userID, scope, target)
	wasSet, err := l.rdb.SetNX(ctx, key, "locked", window).Result()
	if err != nil {
		return apperror.Upstream(fmt.Errorf("failed to check rate limit in redis: %w", err))
	}
	if wasSet {
		return nil
	}

	ttl, err := l.rdb.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}

	return &RateLimitError{
		RetryAfter: ttl,
		Message:    fmt.Sprintf("too many %s requests, try again in %d seconds", scope, int(math.Ceil(ttl.Seconds()))),
	}
}

func (l *redisLimiter) Release(ctx context.Context, userID uuid.UUID, scope string, target uuid.UUID) error {
	if l.rdb == nil {
		return nil
	}
	return l.rdb.Del(ctx, Key(userID, scope, target)).Err()
}
