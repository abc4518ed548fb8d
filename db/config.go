package db

import (
	"time"

	"github.com/ShiruvatiNarasimha/restauri-core/xerrors"
)

// Config DB 组件配置
type Config struct {
	// Driver 数据库驱动类型，目前支持 "sqlite"（默认）
	Driver string `json:"driver" yaml:"driver" mapstructure:"driver"`

	// DSN 数据源，如文件路径或 "file::memory:?cache=shared"
	DSN string `json:"dsn" yaml:"dsn" mapstructure:"dsn"`

	// LogSQL 是否记录每条 SQL（debug 级别）
	LogSQL bool `json:"log_sql" yaml:"log_sql" mapstructure:"log_sql"`

	// SlowThreshold 慢查询阈值，超过后以 warn 级别记录，默认 200ms
	SlowThreshold time.Duration `json:"slow_threshold" yaml:"slow_threshold" mapstructure:"slow_threshold"`
}

// setDefaults 设置默认值
func (c *Config) setDefaults() {
	if c.Driver == "" {
		c.Driver = "sqlite"
	}
	if c.SlowThreshold <= 0 {
		c.SlowThreshold = 200 * time.Millisecond
	}
}

// validate 验证配置
func (c *Config) validate() error {
	if c.Driver != "sqlite" {
		return xerrors.Wrapf(ErrInvalidConfig, "unsupported driver: %s", c.Driver)
	}
	if c.DSN == "" {
		return xerrors.Wrapf(ErrInvalidConfig, "dsn is required")
	}
	return nil
}
