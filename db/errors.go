package db

import (
	"github.com/ShiruvatiNarasimha/restauri-core/xerrors"
)

// 数据库模块预定义错误
var (
	// ErrConfigNil 配置为空
	ErrConfigNil = xerrors.New("db: config is nil")

	// ErrInvalidConfig 配置无效
	ErrInvalidConfig = xerrors.New("db: invalid config")
)
