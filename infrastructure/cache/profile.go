package cache

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

//go:generate mockgen -source=profile.go -destination=mocks/profile.go -package=mocks

const publicProfileKey = "dash-delivery:public-profile"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ProfileCache guarda o perfil de exibição global mostrado na tela de login
type ProfileCache interface {
	GetProfile(ctx context.Context) (*domain.Profile, bool)
	SetProfile(ctx context.Context, profile domain.Profile, ttl time.Duration)
	InvalidateProfile(ctx context.Context)
}

// NewRedisClient abre a conexão a partir de uma URL redis:// e confere com um PING
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "URL do Redis inválida")
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "falha ao conectar no Redis")
	}

	return client, nil
}

type RedisProfileCache struct {
	client redis.Cmdable
}

func NewRedisProfileCache(client redis.Cmdable) *RedisProfileCache {
	return &RedisProfileCache{client: client}
}

// GetProfile trata falhas do Redis como ausência no cache
func (c *RedisProfileCache) GetProfile(ctx context.Context) (*domain.Profile, bool) {
	cached, err := c.client.Get(ctx, publicProfileKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.ForContext(ctx).WithError(err).Warn("Erro ao ler perfil público do cache")
		}
		return nil, false
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(cached), &profile); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Perfil público inválido no cache")
		return nil, false
	}

	return &profile, true
}

func (c *RedisProfileCache) SetProfile(ctx context.Context, profile domain.Profile, ttl time.Duration) {
	data, err := json.Marshal(profile)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, publicProfileKey, data, ttl).Err(); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gravar perfil público no cache")
	}
}

func (c *RedisProfileCache) InvalidateProfile(ctx context.Context) {
	if err := c.client.Del(ctx, publicProfileKey).Err(); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao invalidar perfil público no cache")
	}
}

// NoopProfileCache é usado quando REDIS_URL não está configurada
type NoopProfileCache struct{}

func (NoopProfileCache) GetProfile(context.Context) (*domain.Profile, bool) { return nil, false }

func (NoopProfileCache) SetProfile(context.Context, domain.Profile, time.Duration) {}

func (NoopProfileCache) InvalidateProfile(context.Context) {}
