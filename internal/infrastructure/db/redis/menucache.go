package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
)

const (
	menuKey        = "menu:foods"
	defaultMenuTTL = 5 * time.Minute
)

// MenuCache caches the full foods list under a single key. The cached value
// is the JSON encoding of the slice; menu writes invalidate the key.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache creates a MenuCache wrapping the given Redis client. A ttl of
// zero falls back to the default.
func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	if ttl <= 0 {
		ttl = defaultMenuTTL
	}
	return &MenuCache{client: client, ttl: ttl}
}

// Get returns the cached menu and whether the key was present.
func (c *MenuCache) Get(ctx context.Context) ([]domain.Food, bool, error) {
	raw, err := c.client.Get(ctx, menuKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("menu cache get: %w", err)
	}

	var foods []domain.Food
	if err := json.Unmarshal(raw, &foods); err != nil {
		return nil, false, fmt.Errorf("menu cache decode: %w", err)
	}
	return foods, true, nil
}

// Set stores the menu, replacing any previous value.
func (c *MenuCache) Set(ctx context.Context, foods []domain.Food) error {
	raw, err := json.Marshal(foods)
	if err != nil {
		return fmt.Errorf("menu cache encode: %w", err)
	}
	return c.client.Set(ctx, menuKey, raw, c.ttl).Err()
}

// Invalidate drops the cached menu.
func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, menuKey).Err()
}
