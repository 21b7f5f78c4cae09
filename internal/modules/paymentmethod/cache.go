package paymentmethod

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const activeListKey = "payment-methods:active"

// Cache stores the active payment method list.
type Cache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context) (methods []*PaymentMethod, ok bool, err error)
	Set(ctx context.Context, methods []*PaymentMethod) error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache keeps the active list under a single key for ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context) ([]*PaymentMethod, bool, error) {
	data, err := c.client.Get(ctx, activeListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var methods []*PaymentMethod
	if err := json.Unmarshal(data, &methods); err != nil {
		return nil, false, err
	}
	return methods, true, nil
}

func (c *redisCache) Set(ctx context.Context, methods []*PaymentMethod) error {
	data, err := json.Marshal(methods)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, activeListKey, data, c.ttl).Err()
}

// noopCache is used when Redis is not configured.
type noopCache struct{}

func NewNoopCache() Cache { return noopCache{} }

func (noopCache) Get(context.Context) ([]*PaymentMethod, bool, error) { return nil, false, nil }
func (noopCache) Set(context.Context, []*PaymentMethod) error         { return nil }
