package token

import "github.com/ShiruvatiNarasimha/restauri-core/xerrors"

var (
	// ErrTokenFormat 令牌不满足 segment.segment.segment 结构
	ErrTokenFormat = xerrors.New("token: malformed token")

	// ErrTokenDecode 载荷段 base64 解码或 JSON 解析失败
	ErrTokenDecode = xerrors.New("token: payload decode failed")

	// ErrTokenSchema 载荷缺少必需字段或字段类型错误
	ErrTokenSchema = xerrors.New("token: invalid payload schema")

	// ErrTokenExpired 令牌已过期
	ErrTokenExpired = xerrors.New("token: token expired")

	// ErrMissingToken 请求中未携带令牌
	ErrMissingToken = xerrors.New("token: missing token")

	// ErrInvalidClaims 签发时传入的 Claims 非法
	ErrInvalidClaims = xerrors.New("token: invalid claims")

	// ErrInvalidConfig 配置非法
	ErrInvalidConfig = xerrors.New("token: invalid config")
)
