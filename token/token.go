// Package token 提供会话令牌的签发与验证能力。
//
// 验证实现的是站点会话层的解码契约：按顺序做结构校验、载荷解码、
// 字段校验和过期校验，第一个失败即返回对应的哨兵错误，不产生部分
// 结果。重复验证同一令牌是幂等且无副作用的（日志与指标除外）。
//
// 支持：
//   - 令牌签发（HS256，自动填充 exp/iat/jti）
//   - 四步验证流水线与组合入口 ValidateAndDecode
//   - Gin 中间件集成与基于角色的访问控制
//   - 多种令牌提取方式 (Header, Cookie, Query)
//
// 基本使用：
//
//	validator, _ := token.New(&token.Config{SecretKey: "..."})
//	raw, _ := validator.Issue(ctx, &token.Claims{ID: 1, Role: "admin", Username: "dario"})
//	claims, err := validator.ValidateAndDecode(ctx, raw)
package token

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ShiruvatiNarasimha/restauri-core/clog"
	"github.com/ShiruvatiNarasimha/restauri-core/metrics"
	"github.com/ShiruvatiNarasimha/restauri-core/xerrors"
)

// Validator 令牌验证器接口
type Validator interface {
	// Issue 签发令牌，自动填充缺省的 exp/iat/iss/jti
	Issue(ctx context.Context, claims *Claims) (string, error)

	// ValidateFormat 校验令牌的三段结构
	ValidateFormat(token string) error

	// Decode 解码载荷段并解析为 JSON 值
	Decode(token string) (any, error)

	// ValidatePayload 校验解码结果包含所有必需字段，返回类型化的 Claims
	ValidatePayload(decoded any) (*Claims, error)

	// ValidateExpiry 校验令牌未过期（含配置的提前量）
	ValidateExpiry(claims *Claims) error

	// ValidateAndDecode 按顺序组合上述四步，返回第一个失败
	ValidateAndDecode(ctx context.Context, token string) (*Claims, error)

	// GinMiddleware 返回 Gin 认证中间件
	GinMiddleware() gin.HandlerFunc
}

// tokenFormat 三段结构：前两段非空，签名段允许为空（未签名令牌）
var tokenFormat = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*$`)

// jwtValidator 基于 JWT 的验证器实现
type jwtValidator struct {
	config  *Config
	options *options

	issuedCounter      metrics.Counter
	validatedCounter   metrics.Counter
	validationDuration metrics.Histogram
}

// New 创建 Validator
func New(cfg *Config, opts ...Option) (Validator, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &jwtValidator{
		config:  cfg,
		options: o,

		issuedCounter:    counterOrNoop(o.meter, MetricTokensIssued, "Total number of tokens issued"),
		validatedCounter: counterOrNoop(o.meter, MetricTokensValidated, "Total number of tokens validated"),
		validationDuration: histogramOrNoop(o.meter, MetricValidationDuration,
			"Token validation duration in seconds", metrics.WithUnit("s")),
	}, nil
}

// Issue 签发令牌
func (v *jwtValidator) Issue(ctx context.Context, claims *Claims) (string, error) {
	if claims == nil || claims.ID == 0 || claims.Role == "" || claims.Username == "" {
		return "", ErrInvalidClaims
	}

	now := time.Now()
	if claims.Exp == 0 {
		claims.Exp = now.Add(v.config.TokenTTL).Unix()
	}
	if claims.IssuedAt == 0 {
		claims.IssuedAt = now.Unix()
	}
	if claims.Issuer == "" {
		claims.Issuer = v.config.Issuer
	}
	if claims.JTI == "" {
		claims.JTI = uuid.NewString()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(v.config.SecretKey))
	if err != nil {
		v.issuedCounter.Inc(ctx, metrics.L(metrics.LabelStatus, metrics.OutcomeError))
		return "", xerrors.Wrap(err, "failed to sign token")
	}

	v.options.logger.Info("token issued",
		clog.Int64("user_id", claims.ID),
		clog.String("role", claims.Role))
	v.issuedCounter.Inc(ctx, metrics.L(metrics.LabelStatus, metrics.OutcomeSuccess))

	return signed, nil
}

// ValidateFormat 校验令牌的三段结构
func (v *jwtValidator) ValidateFormat(token string) error {
	if !tokenFormat.MatchString(token) {
		return ErrTokenFormat
	}
	return nil
}

// Decode 解码载荷段
//
// 只解释第二段；header 和签名段不做处理。解码或 JSON 解析失败都
// 归为 ErrTokenDecode。
func (v *jwtValidator) Decode(token string) (any, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, xerrors.Wrapf(ErrTokenDecode, "expected 3 segments, got %d", len(segments))
	}

	payload, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return nil, xerrors.Wrapf(ErrTokenDecode, "base64 decode: %v", err)
	}

	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, xerrors.Wrapf(ErrTokenDecode, "json parse: %v", err)
	}

	return decoded, nil
}

// ValidatePayload 校验载荷字段
//
// 按 exp、id、role、username 的顺序检查，第一个缺失或类型错误的
// 字段即短路返回，错误消息中包含字段名。
func (v *jwtValidator) ValidatePayload(decoded any) (*Claims, error) {
	payload, ok := decoded.(map[string]any)
	if !ok {
		return nil, xerrors.Wrapf(ErrTokenSchema, "payload is not an object")
	}

	exp, ok := payload["exp"].(float64)
	if !ok {
		return nil, xerrors.Wrapf(ErrTokenSchema, "missing or invalid claim: exp")
	}
	id, ok := payload["id"].(float64)
	if !ok {
		return nil, xerrors.Wrapf(ErrTokenSchema, "missing or invalid claim: id")
	}
	role, ok := payload["role"].(string)
	if !ok {
		return nil, xerrors.Wrapf(ErrTokenSchema, "missing or invalid claim: role")
	}
	username, ok := payload["username"].(string)
	if !ok {
		return nil, xerrors.Wrapf(ErrTokenSchema, "missing or invalid claim: username")
	}

	claims := &Claims{
		Exp:      int64(exp),
		ID:       int64(id),
		Role:     role,
		Username: username,
	}

	// 可选声明，存在即保留
	if iat, ok := payload["iat"].(float64); ok {
		claims.IssuedAt = int64(iat)
	}
	if iss, ok := payload["iss"].(string); ok {
		claims.Issuer = iss
	}
	if jti, ok := payload["jti"].(string); ok {
		claims.JTI = jti
	}

	return claims, nil
}

// ValidateExpiry 校验过期时间
//
// exp 的单位是秒，与当前毫秒时间比较；ExpiryLeeway 把判定时刻前移，
// 令剩余有效期不足提前量的令牌提前失效。
func (v *jwtValidator) ValidateExpiry(claims *Claims) error {
	if claims == nil {
		return xerrors.Wrapf(ErrTokenSchema, "claims is nil")
	}

	deadline := time.Now().UnixMilli() + v.config.ExpiryLeeway.Milliseconds()
	if claims.Exp*1000 <= deadline {
		return ErrTokenExpired
	}
	return nil
}

// ValidateAndDecode 组合验证入口，第一个失败即返回
func (v *jwtValidator) ValidateAndDecode(ctx context.Context, token string) (*Claims, error) {
	start := time.Now()

	claims, err := v.validateAndDecode(token)
	if err != nil {
		v.validatedCounter.Inc(ctx,
			metrics.L(metrics.LabelStatus, metrics.OutcomeError),
			metrics.L(metrics.LabelErrorType, validationErrorType(err)))
		return nil, err
	}

	v.options.logger.Debug("token validated",
		clog.Int64("user_id", claims.ID),
		clog.String("username", claims.Username))

	v.validatedCounter.Inc(ctx, metrics.L(metrics.LabelStatus, metrics.OutcomeSuccess))
	v.validationDuration.Record(ctx, time.Since(start).Seconds())

	return claims, nil
}

// validateAndDecode 四步验证流水线（无指标，内部使用）
func (v *jwtValidator) validateAndDecode(token string) (*Claims, error) {
	if err := v.ValidateFormat(token); err != nil {
		return nil, err
	}

	decoded, err := v.Decode(token)
	if err != nil {
		return nil, err
	}

	claims, err := v.ValidatePayload(decoded)
	if err != nil {
		return nil, err
	}

	if err := v.ValidateExpiry(claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// validationErrorType 将验证错误映射为指标标签值
func validationErrorType(err error) string {
	switch {
	case xerrors.Is(err, ErrTokenFormat):
		return "format"
	case xerrors.Is(err, ErrTokenDecode):
		return "decode"
	case xerrors.Is(err, ErrTokenSchema):
		return "schema"
	case xerrors.Is(err, ErrTokenExpired):
		return "expired"
	default:
		return "unknown"
	}
}

// ExtractToken 从请求中提取令牌
func (v *jwtValidator) ExtractToken(r *http.Request) (string, error) {
	parts := strings.Split(v.config.TokenLookup, ":")
	if len(parts) != 2 {
		return "", ErrMissingToken
	}

	source, key := parts[0], parts[1]

	switch source {
	case "header":
		authHeader := r.Header.Get(key)
		if authHeader == "" {
			return "", ErrMissingToken
		}
		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != v.config.TokenHeadName {
			return "", ErrTokenFormat
		}
		return tokenParts[1], nil

	case "query":
		raw := r.URL.Query().Get(key)
		if raw == "" {
			return "", ErrMissingToken
		}
		return raw, nil

	case "cookie":
		cookie, err := r.Cookie(key)
		if err != nil {
			return "", ErrMissingToken
		}
		return cookie.Value, nil

	default:
		return "", ErrMissingToken
	}
}
