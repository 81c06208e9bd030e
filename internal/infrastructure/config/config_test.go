package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
  mode: test
database:
  driver: mysql
  host: db
  port: 3307
  user: shop
  password: secret
  dbname: models
  charset: utf8mb4
  parse_time: true
  loc: Asia/Shanghai
session:
  secret: test-secret
  ttl: 1h
cache:
  enabled: true
  category_ttl: 2m
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoadFrom(t *testing.T) {
	dir := writeConfig(t, sampleYAML)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "shop:secret@tcp(db:3307)/models?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai", cfg.Database.DSN())
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.Cache.CategoryTTL)

	// 未配置的项使用默认值
	assert.Equal(t, "modelstore.sid", cfg.Session.CookieName)
	assert.True(t, cfg.Session.HTTPOnly)
	assert.Equal(t, "topic", cfg.MQ.ExchangeType)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	dir := writeConfig(t, sampleYAML)
	t.Setenv("MODELSTORE_SERVER_PORT", "7070")
	t.Setenv("MODELSTORE_DATABASE_DRIVER", "sqlite")
	t.Setenv("MODELSTORE_DATABASE_SQLITE_PATH", "/tmp/models.db")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/models.db", cfg.Database.DSN())
}

func TestLoadFrom_NoFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080, Mode: "debug"},
			Database: DatabaseConfig{Driver: DriverSQLite, SQLitePath: "models.db"},
			Session:  SessionConfig{CookieName: "modelstore.sid", Secret: "s3cret"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"合法配置", func(*Config) {}, false},
		{"端口越界", func(c *Config) { c.Server.Port = 70000 }, true},
		{"未知驱动", func(c *Config) { c.Database.Driver = "postgres" }, true},
		{"sqlite缺少路径", func(c *Config) { c.Database.SQLitePath = "" }, true},
		{"release模式使用默认密钥", func(c *Config) {
			c.Server.Mode = "release"
			c.Session.Secret = defaultSessionSecret
		}, true},
		{"空Cookie名", func(c *Config) { c.Session.CookieName = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "4413/pkg/sqlite/Models_R_US.db"), expandHome("~/4413/pkg/sqlite/Models_R_US.db"))
	assert.Equal(t, "/abs/models.db", expandHome("/abs/models.db"))
	assert.Equal(t, "relative.db", expandHome("relative.db"))
}
