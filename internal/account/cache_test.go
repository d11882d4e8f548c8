package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jdgames/account-service/internal/account"
	"github.com/jdgames/account-service/internal/authz"
)

func newTestCache(t *testing.T) *account.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return account.NewCache(client, time.Minute)
}

func TestCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	profile := &account.Profile{
		ID:       uuid.New(),
		Nickname: "Nick",
		Username: "alice",
		Role:     authz.RolePlayer,
	}

	if _, ok := cache.GetProfile(ctx, profile.ID); ok {
		t.Fatal("expected a miss before set")
	}

	cache.SetProfile(ctx, profile)

	got, ok := cache.GetProfile(ctx, profile.ID)
	if !ok {
		t.Fatal("expected a hit after set")
	}
	if got.Username != "alice" || got.ID != profile.ID {
		t.Fatalf("unexpected cached profile: %+v", got)
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	profile := &account.Profile{ID: uuid.New(), Username: "alice"}
	cache.SetProfile(ctx, profile)
	cache.Invalidate(ctx, profile.ID)

	if _, ok := cache.GetProfile(ctx, profile.ID); ok {
		t.Fatal("expected a miss after invalidation")
	}
}

func TestCacheNilClientDegrades(t *testing.T) {
	var cache *account.Cache
	ctx := context.Background()
	id := uuid.New()

	if _, ok := cache.GetProfile(ctx, id); ok {
		t.Fatal("nil cache must always miss")
	}
	cache.SetProfile(ctx, &account.Profile{ID: id})
	cache.Invalidate(ctx, id)
}
