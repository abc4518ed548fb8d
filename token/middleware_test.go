package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// issueTestToken 签发一个立即可用的测试令牌
func issueTestToken(t *testing.T, v Validator) string {
	t.Helper()

	raw, err := v.Issue(context.Background(), &Claims{
		ID:       42,
		Role:     "admin",
		Username: "dario",
	})
	require.NoError(t, err)
	return raw
}

func setupRouter(v Validator) *gin.Engine {
	r := gin.New()
	r.GET("/me", v.GinMiddleware(), func(c *gin.Context) {
		claims, _ := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	r.GET("/admin", v.GinMiddleware(), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/editor", v.GinMiddleware(), RequireRole("editor"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestGinMiddleware(t *testing.T) {
	v := createTestValidator(t)
	r := setupRouter(v)
	raw := issueTestToken(t, v)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic "+raw)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "dario")
	})

	t.Run("expired token", func(t *testing.T) {
		expired := makeToken(t, map[string]any{
			"exp":      time.Now().Add(-time.Minute).Unix(),
			"id":       1,
			"role":     "admin",
			"username": "dario",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	v := createTestValidator(t)
	r := setupRouter(v)
	raw := issueTestToken(t, v) // role: admin

	t.Run("role allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("role forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/editor", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no claims in context", func(t *testing.T) {
		bare := gin.New()
		bare.GET("/x", RequireRole("admin"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		bare.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCookieLookup(t *testing.T) {
	v := createTestValidator(t, func(c *Config) {
		c.TokenLookup = "cookie:session"
	})
	r := setupRouter(v)
	raw := issueTestToken(t, v)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: raw})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQueryLookup(t *testing.T) {
	v := createTestValidator(t, func(c *Config) {
		c.TokenLookup = "query:token"
	})
	raw := issueTestToken(t, v)

	r := gin.New()
	r.GET("/me", v.GinMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me?token="+raw, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
