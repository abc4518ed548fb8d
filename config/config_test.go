package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile 在临时目录写入 YAML 配置，返回目录路径。
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestNewDefaults(t *testing.T) {
	loader, err := New(nil)
	require.NoError(t, err)
	assert.NotNil(t, loader)
}

func TestLoadAndGet(t *testing.T) {
	dir := writeConfigFile(t, `
app:
  name: restauri-webapp
breaker:
  failure_threshold: 3
  reset_timeout: 30s
`)

	loader, err := New(&Config{Paths: []string{dir}})
	require.NoError(t, err)
	require.NoError(t, loader.Load(context.Background()))

	assert.Equal(t, "restauri-webapp", loader.Get("app.name"))
	assert.EqualValues(t, 3, loader.Get("breaker.failure_threshold"))
}

func TestUnmarshalKey(t *testing.T) {
	dir := writeConfigFile(t, `
token:
  secret_key: "0123456789abcdef0123456789abcdef"
  issuer: restauri
`)

	loader, err := New(&Config{Paths: []string{dir}})
	require.NoError(t, err)
	require.NoError(t, loader.Load(context.Background()))

	var tokenCfg struct {
		SecretKey string `mapstructure:"secret_key"`
		Issuer    string `mapstructure:"issuer"`
	}
	require.NoError(t, loader.UnmarshalKey("token", &tokenCfg))
	assert.Equal(t, "0123456789abcdef0123456789abcdef", tokenCfg.SecretKey)
	assert.Equal(t, "restauri", tokenCfg.Issuer)
}

func TestEnvOverride(t *testing.T) {
	dir := writeConfigFile(t, `
app:
  name: from-file
`)

	t.Setenv("RESTAURI_APP_NAME", "from-env")

	loader, err := New(&Config{Paths: []string{dir}})
	require.NoError(t, err)
	require.NoError(t, loader.Load(context.Background()))

	assert.Equal(t, "from-env", loader.Get("app.name"))
}

func TestValidateEmpty(t *testing.T) {
	// 空目录里没有任何配置来源
	loader, err := New(&Config{Paths: []string{t.TempDir()}})
	require.NoError(t, err)

	err = loader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, IsValidationFailed(err))
}

func TestWatchCancel(t *testing.T) {
	dir := writeConfigFile(t, `
app:
  debug: false
`)

	loader, err := New(&Config{Paths: []string{dir}})
	require.NoError(t, err)
	require.NoError(t, loader.Load(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := loader.Watch(ctx, "app.debug")
	require.NoError(t, err)

	// 取消后通道应被关闭
	cancel()
	_, open := <-ch
	assert.False(t, open)
}
