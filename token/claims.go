package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 定义了会话令牌的载荷结构。
//
// 必需字段（验证顺序即声明顺序）：
//   - Exp: 过期时间（Unix 秒）
//   - ID: 用户数字标识
//   - Role: 角色
//   - Username: 用户名
//
// 可选字段由签发方填充，验证时不做要求。
type Claims struct {
	Exp      int64  `json:"exp"`
	ID       int64  `json:"id"`
	Role     string `json:"role"`
	Username string `json:"username"`

	// 可选的标准声明
	IssuedAt int64  `json:"iat,omitempty"`
	Issuer   string `json:"iss,omitempty"`
	JTI      string `json:"jti,omitempty"`
}

// 以下方法实现 jwt.Claims 接口，使 Claims 可直接交给 golang-jwt 签名。

func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.Exp == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.Exp, 0)), nil
}

func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	if c.IssuedAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) {
	return nil, nil
}

func (c *Claims) GetIssuer() (string, error) {
	return c.Issuer, nil
}

func (c *Claims) GetSubject() (string, error) {
	if c.ID == 0 {
		return "", nil
	}
	return strconv.FormatInt(c.ID, 10), nil
}

func (c *Claims) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}
