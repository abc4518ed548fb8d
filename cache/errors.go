package cache

import (
	"github.com/ShiruvatiNarasimha/restauri-core/xerrors"
)

// 缓存模块预定义错误
var (
	// ErrConfigNil 配置为空
	ErrConfigNil = xerrors.New("cache: config is nil")

	// ErrCacheMiss 缓存未命中
	ErrCacheMiss = xerrors.New("cache: key not found")
)
