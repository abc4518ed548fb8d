package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ShiruvatiNarasimha/restauri-core/cache/serializer"
	"github.com/ShiruvatiNarasimha/restauri-core/clog"
	"github.com/ShiruvatiNarasimha/restauri-core/metrics"
	"github.com/ShiruvatiNarasimha/restauri-core/xerrors"
)

type redisCache struct {
	client     *redis.Client
	serializer serializer.Serializer
	prefix     string
	logger     clog.Logger

	hits   metrics.Counter
	misses metrics.Counter
}

// newRedis 创建 Redis 缓存实例
func newRedis(cfg *Config, s serializer.Serializer, opt *options) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	hits, err := opt.meter.Counter(MetricHitsTotal, "Cache hits")
	if err != nil {
		hits, _ = metrics.Discard().Counter(MetricHitsTotal, "Cache hits")
	}
	misses, err := opt.meter.Counter(MetricMissesTotal, "Cache misses")
	if err != nil {
		misses, _ = metrics.Discard().Counter(MetricMissesTotal, "Cache misses")
	}

	opt.logger.Info("cache created",
		clog.String("addr", cfg.Addr),
		clog.String("prefix", cfg.Prefix),
		clog.String("serializer", cfg.Serializer))

	return &redisCache{
		client:     client,
		serializer: s,
		prefix:     cfg.Prefix,
		logger:     opt.logger,
		hits:       hits,
		misses:     misses,
	}, nil
}

func (c *redisCache) getKey(key string) string {
	return c.prefix + key
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := c.serializer.Marshal(value)
	if err != nil {
		return xerrors.Wrapf(err, "cache: marshal %s", key)
	}
	return c.client.Set(ctx, c.getKey(key), data, ttl).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, c.getKey(key)).Bytes()
	if xerrors.Is(err, redis.Nil) {
		c.misses.Inc(ctx)
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	c.hits.Inc(ctx)
	return c.serializer.Unmarshal(data, dest)
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.getKey(key)).Err()
}

func (c *redisCache) Has(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.getKey(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, c.getKey(key), ttl).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
