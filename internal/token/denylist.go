package token

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Denylist records tokens invalidated before their natural expiry.
type Denylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) bool
}

// RedisDenylist keeps revoked jti values in redis, each entry expiring
// together with the token it blocks.
type RedisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// já expirado, nada a registrar
		return nil
	}
	return d.client.Set(ctx, "revoked:"+jti, "1", ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) bool {
	n, err := d.client.Exists(ctx, "revoked:"+jti).Result()
	if err != nil {
		// redis indisponível: tokens assinados continuam valendo
		return false
	}
	return n > 0
}
