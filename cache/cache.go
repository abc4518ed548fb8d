// Package cache 提供基于 Redis 的键值缓存组件，支持自动序列化。
//
// 缓存值默认使用 JSON 序列化，可切换为 MessagePack。所有键自动附加
// 配置的前缀，避免多个应用共用一个 Redis 实例时互相覆盖。
//
// 基本使用：
//
//	cacheClient, _ := cache.New(&cache.Config{
//	    Addr:       "localhost:6379",
//	    Prefix:     "restauri:",
//	    Serializer: "json",
//	}, cache.WithLogger(logger))
//	defer cacheClient.Close()
//
//	// 缓存对象
//	err := cacheClient.Set(ctx, "projects", projects, 5*time.Minute)
//
//	// 获取对象，未命中时返回 ErrCacheMiss
//	var cached []Project
//	err = cacheClient.Get(ctx, "projects", &cached)
package cache

import (
	"context"
	"time"

	"github.com/ShiruvatiNarasimha/restauri-core/cache/serializer"
)

// Cache 定义了缓存组件的核心能力
type Cache interface {
	// Set 写入缓存值，ttl 为 0 时永不过期
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Get 读取缓存值并反序列化到 dest，未命中时返回 ErrCacheMiss
	Get(ctx context.Context, key string, dest any) error

	// Delete 删除缓存键
	Delete(ctx context.Context, key string) error

	// Has 判断缓存键是否存在
	Has(ctx context.Context, key string) (bool, error)

	// Expire 更新缓存键的过期时间
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Close 关闭底层连接
	Close() error
}

// New 创建缓存实例
//
// 参数:
//   - cfg: 缓存配置
//   - opts: 可选参数 (Logger, Meter)
func New(cfg *Config, opts ...Option) (Cache, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}
	cfg.setDefaults()

	s, err := serializer.New(cfg.Serializer)
	if err != nil {
		return nil, err
	}

	opt := defaultOptions()
	for _, o := range opts {
		o(opt)
	}

	return newRedis(cfg, s, opt)
}
