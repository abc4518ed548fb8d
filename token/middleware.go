package token

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClaimsKey Gin Context 中存放 Claims 的 key
const ClaimsKey = "token:claims"

// GinMiddleware 返回 Gin 认证中间件。
//
// 提取失败或验证失败都拒绝会话（401）；验证通过的 Claims 存入
// Context，供后续 handler 和 RequireRole 读取。
func (v *jwtValidator) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := v.ExtractToken(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}

		claims, err := v.ValidateAndDecode(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole 要求特定角色的中间件，Claims 的角色匹配任意一个即放行。
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "forbidden: insufficient role",
		})
	}
}

// GetClaims 从 Gin Context 获取 Claims
func GetClaims(c *gin.Context) (*Claims, bool) {
	claims, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	return claims.(*Claims), true
}
