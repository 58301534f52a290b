package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

func TestNewRedisClient_URLInvalida(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "http://nao-e-redis")

	assert.Nil(t, client)
	assert.Error(t, err)
}

func TestRedisProfileCache_RedisIndisponivel(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewRedisProfileCache(client)
	ctx := context.Background()

	assert.NotPanics(t, func() {
		cache.SetProfile(ctx, domain.Profile{Name: "Loja"}, time.Minute)
		cache.InvalidateProfile(ctx)
	})

	profile, ok := cache.GetProfile(ctx)
	assert.False(t, ok)
	assert.Nil(t, profile)
}

func TestNoopProfileCache(t *testing.T) {
	var cache ProfileCache = NoopProfileCache{}
	ctx := context.Background()

	cache.SetProfile(ctx, domain.Profile{Name: "Loja"}, time.Minute)

	profile, ok := cache.GetProfile(ctx)
	assert.False(t, ok)
	assert.Nil(t, profile)
}
