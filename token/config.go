package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ShiruvatiNarasimha/restauri-core/xerrors"
)

// Config Token 组件配置
type Config struct {
	// 签发配置
	SecretKey     string `mapstructure:"secret_key"`     // 签名密钥（至少 32 字符）
	SigningMethod string `mapstructure:"signing_method"` // 签名方法: HS256（目前只支持）
	Issuer        string `mapstructure:"issuer"`         // 签发者

	// TokenTTL 签发令牌的有效期，默认 15m
	TokenTTL time.Duration `mapstructure:"token_ttl"`

	// ExpiryLeeway 过期提前量。令牌剩余有效期不足该值时按已过期处理，
	// 默认 0（严格按 exp 判定）。
	ExpiryLeeway time.Duration `mapstructure:"expiry_leeway"`

	// Token 提取配置
	TokenLookup   string `mapstructure:"token_lookup"`    // 提取方式: "header:Authorization" | "query:token" | "cookie:<name>"
	TokenHeadName string `mapstructure:"token_head_name"` // Header 前缀，默认 Bearer
}

// setDefaults 设置默认值
func (c *Config) setDefaults() {
	if c.SigningMethod == "" {
		c.SigningMethod = "HS256"
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 15 * time.Minute
	}
	if c.TokenLookup == "" {
		c.TokenLookup = "header:Authorization"
	}
	if c.TokenHeadName == "" {
		c.TokenHeadName = "Bearer"
	}
}

// validate 验证配置
func (c *Config) validate() error {
	if c.SecretKey == "" {
		return ErrInvalidConfig
	}

	if len(c.SecretKey) < 32 {
		return xerrors.Wrapf(ErrInvalidConfig, "secret_key must be at least 32 characters")
	}

	if c.SigningMethod != jwt.SigningMethodHS256.Alg() {
		return xerrors.Wrapf(ErrInvalidConfig, "unsupported signing_method: %s", c.SigningMethod)
	}

	if c.TokenTTL <= 0 {
		return xerrors.Wrapf(ErrInvalidConfig, "token_ttl must be positive")
	}

	if c.ExpiryLeeway < 0 {
		return xerrors.Wrapf(ErrInvalidConfig, "expiry_leeway must not be negative")
	}

	return nil
}
