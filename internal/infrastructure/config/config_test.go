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
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFile_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9090\"\n")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "./storage/app", cfg.Storage.Root)
	assert.Equal(t, uint32(0644), cfg.Storage.FileMode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 0, cfg.RateLimit.QPS)
	assert.False(t, cfg.Inventory.Enabled)
	assert.Equal(t, ":9090", cfg.Server.Address())
}

func TestLoadConfigFile_EnvOverride(t *testing.T) {
	path := writeConfig(t, "storage:\n  root: /srv/files\n")
	t.Setenv("FILES_STORAGE_ROOT", "/data/files")
	t.Setenv("FILES_RATELIMIT_QPS", "25")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/files", cfg.Storage.Root)
	assert.Equal(t, 25, cfg.RateLimit.QPS)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:  ServerConfig{Port: "8080", Mode: "release"},
			Storage: StorageConfig{Root: "/tmp", MaxNameLength: 255},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "合法配置", mutate: func(c *Config) {}, wantErr: false},
		{name: "空存储目录", mutate: func(c *Config) { c.Storage.Root = "" }, wantErr: true},
		{name: "空端口", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "未知模式", mutate: func(c *Config) { c.Server.Mode = "prod" }, wantErr: true},
		{name: "负QPS", mutate: func(c *Config) { c.RateLimit.QPS = -1 }, wantErr: true},
		{name: "前缀缺少斜杠", mutate: func(c *Config) { c.Server.BasePath = "api" }, wantErr: true},
		{name: "合法前缀", mutate: func(c *Config) { c.Server.BasePath = "/api" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\nratelimit:\n  qps: 0\n")

	changes := make(chan *Config, 8)
	require.NoError(t, Watch(path, func(cfg *Config, err error) {
		if err == nil {
			select {
			case changes <- cfg:
			default:
			}
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nratelimit:\n  qps: 7\n"), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.RateLimit.QPS == 7 {
				assert.Equal(t, "debug", cfg.Log.Level)
				return
			}
		case <-deadline:
			t.Fatal("config change was not observed")
		}
	}
}

func TestWatch_MissingFile(t *testing.T) {
	err := Watch(filepath.Join(t.TempDir(), "absent.yaml"), func(*Config, error) {})
	assert.Error(t, err)
}
