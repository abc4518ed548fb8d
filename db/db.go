// Package db 提供基于 GORM 的数据库组件。
//
// 组件封装连接创建、事务管理和 SQL 日志，SQL 日志通过适配器
// 输出到 clog，慢查询自动以 warn 级别记录。
//
// ## 基本使用
//
//	database, _ := db.New(&db.Config{
//		Driver: "sqlite",
//		DSN:    "restauri.db",
//	}, db.WithLogger(logger))
//	defer database.Close()
//
//	// 使用 GORM 进行数据库操作
//	gormDB := database.DB(ctx)
//	var projects []Project
//	gormDB.Where("category = ?", "restoration").Find(&projects)
//
//	// 事务操作
//	err := database.Transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
//		return tx.Create(&Project{Title: "new site"}).Error
//	})
package db

import (
	"context"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ShiruvatiNarasimha/restauri-core/clog"
	"github.com/ShiruvatiNarasimha/restauri-core/xerrors"
)

// DB 定义了数据库组件的核心能力
type DB interface {
	// DB 获取底层的 *gorm.DB 实例
	// 绝大多数业务查询直接使用此方法返回的对象
	DB(ctx context.Context) *gorm.DB

	// Transaction 执行事务操作
	// fn 中的 tx 对象仅在当前事务范围内有效
	Transaction(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error

	// AutoMigrate 迁移给定模型的表结构
	AutoMigrate(models ...any) error

	// Close 关闭底层连接池
	Close() error
}

// database 是 DB 接口的实现
type database struct {
	client *gorm.DB
	logger clog.Logger
}

// New 创建数据库组件实例
//
// 参数:
//   - cfg: DB 配置
//   - opts: 可选参数 (Logger)
func New(cfg *Config, opts ...Option) (DB, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Wrapf(err, "invalid db config")
	}

	opt := defaultOptions()
	for _, o := range opts {
		o(opt)
	}

	gormDB, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger: newGormLogger(opt.logger, cfg.LogSQL, cfg.SlowThreshold),
	})
	if err != nil {
		return nil, xerrors.Wrapf(err, "open database %s", cfg.DSN)
	}

	opt.logger.Info("database opened",
		clog.String("driver", cfg.Driver),
		clog.String("dsn", cfg.DSN))

	return &database{
		client: gormDB,
		logger: opt.logger,
	}, nil
}

// DB 获取底层的 *gorm.DB 实例
func (d *database) DB(ctx context.Context) *gorm.DB {
	return d.client.WithContext(ctx)
}

// Transaction 执行事务操作
func (d *database) Transaction(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error {
	return d.client.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
}

// AutoMigrate 迁移给定模型的表结构
func (d *database) AutoMigrate(models ...any) error {
	return d.client.AutoMigrate(models...)
}

// Close 关闭底层连接池
func (d *database) Close() error {
	sqlDB, err := d.client.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
