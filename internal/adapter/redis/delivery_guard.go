package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adpulse/internal/config/configs"
)

// DeliveryGuard implements port.DeliveryGuard with SET NX. A delivery
// id is claimed for ttl; a second claim inside that span fails.
type DeliveryGuard struct {
	client *redis.Client
	prefix string
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewDeliveryGuard returns a guard storing keys under "delivery:".
func NewDeliveryGuard(client *redis.Client) *DeliveryGuard {
	return &DeliveryGuard{client: client, prefix: "delivery"}
}

// Claim records id for source. It returns false if it was already seen.
func (g *DeliveryGuard) Claim(ctx context.Context, source, id string, ttl time.Duration) (bool, error) {
	key := g.key(source, id)
	ok, err := g.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim delivery %s: %w", key, err)
	}
	return ok, nil
}

// Release forgets the claim on id. Releasing an unclaimed id is a no-op.
func (g *DeliveryGuard) Release(ctx context.Context, source, id string) error {
	key := g.key(source, id)
	if err := g.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("release delivery %s: %w", key, err)
	}
	return nil
}

func (g *DeliveryGuard) key(source, id string) string {
	return fmt.Sprintf("%s:%s:%s", g.prefix, source, id)
}
