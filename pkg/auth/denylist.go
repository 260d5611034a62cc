package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist remembers revoked token ids until the token would have expired anyway.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisDenylist struct {
	rdb *redis.Client
}

// NewDenylist returns a Redis backed denylist. With a nil client revocation is a no-op.
func NewDenylist(rdb *redis.Client) Denylist {
	return &redisDenylist{rdb: rdb}
}

func DenylistKey(tokenID string) string {
	return "auth:revoked:" + tokenID
}

func (d *redisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if d.rdb == nil || tokenID == "" || ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, DenylistKey(tokenID), "1", ttl).Err()
}

func (d *redisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if d.rdb == nil || tokenID == "" {
		return false, nil
	}
	_, err := d.rdb.Get(ctx, DenylistKey(tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
