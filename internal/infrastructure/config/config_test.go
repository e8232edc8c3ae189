package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  mode: release
collection:
  default_capacity: 120
catalog:
  enabled: true
  host: db.local
  port: 3307
  user: reader
  password: secret
  dbname: bookstore
  loc: Asia/Shanghai
  breaker_timeout: 15s
log:
  level: debug
  format: json
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 120, cfg.Collection.DefaultCapacity)
	assert.True(t, cfg.Catalog.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Catalog.BreakerTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	// 未在文件中出现的字段使用默认值
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "utf8mb4", cfg.Catalog.Charset)
	assert.Equal(t, 10, cfg.Catalog.Burst)
	assert.Equal(t, "book-collection", cfg.Tracing.ServiceName)

	assert.Equal(t,
		"reader:secret@tcp(db.local:3307)/bookstore?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai",
		cfg.Catalog.DSN())
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("BOOKCOLLECTION_SERVER_PORT", "7070")
	t.Setenv("BOOKCOLLECTION_COLLECTION_DEFAULT_CAPACITY", "7")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 7, cfg.Collection.DefaultCapacity)
}

func TestLoadFrom_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"端口非法", "server:\n  port: 70000\n"},
		{"默认容量超过上限", "collection:\n  default_capacity: 201\n"},
		{"默认容量为负", "collection:\n  default_capacity: -1\n"},
		{"日志级别非法", "log:\n  level: loud\n"},
		{"限流速率非法", "catalog:\n  enabled: true\n  rate_per_second: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	// 在没有配置文件的目录中加载,全部使用默认值
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Collection.DefaultCapacity)
	assert.False(t, cfg.Catalog.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
}
