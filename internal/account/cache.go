package account

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache is a Redis read-through cache for public account projections.
// A nil client degrades to direct store reads; the store stays authoritative.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func profileKey(id uuid.UUID) string {
	return "account:profile:" + id.String()
}

// GetProfile returns the cached projection, or false on a miss.
func (c *Cache) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, profileKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var profile Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, false
	}
	return &profile, true
}

// SetProfile stores the projection for the cache TTL. Write failures are
// ignored.
func (c *Cache) SetProfile(ctx context.Context, profile *Profile) {
	if c == nil || c.client == nil || profile == nil {
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, profileKey(profile.ID), raw, c.ttl).Err()
}

// Invalidate drops the cached projection after a mutation.
func (c *Cache) Invalidate(ctx context.Context, id uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, profileKey(id)).Err()
}
