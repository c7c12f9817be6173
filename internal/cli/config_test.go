package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mshaler/isogrid/pkg/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
[server]
addr = ":9090"

[cache]
backend = "redis"
redis_addr = "redis.internal:6379"
redis_db = 2

[store]
mongo_uri = "mongodb://localhost:27017"

[template]
data_col_width = "minmax(120px, 1fr)"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
	if cfg.Cache.Backend != CacheBackendRedis {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, CacheBackendRedis)
	}
	if cfg.Cache.RedisAddr != "redis.internal:6379" {
		t.Errorf("Cache.RedisAddr = %q", cfg.Cache.RedisAddr)
	}
	if cfg.Cache.RedisDB != 2 {
		t.Errorf("Cache.RedisDB = %d, want 2", cfg.Cache.RedisDB)
	}
	if cfg.Store.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("Store.MongoURI = %q", cfg.Store.MongoURI)
	}
	if string(cfg.Template.TemplateOptions().DataColWidth) != "minmax(120px, 1fr)" {
		t.Errorf("Template.DataColWidth = %q", cfg.Template.DataColWidth)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	// A partial file keeps defaults for unset sections.
	path := writeConfigFile(t, `
[server]
addr = ":3000"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("Cache.Backend = %q, want default %q", cfg.Cache.Backend, CacheBackendFile)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("Cache.RedisAddr = %q, want default", cfg.Cache.RedisAddr)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("LoadConfig() expected error for missing file")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeFileNotFound {
		t.Errorf("error code = %v, want %v", code, errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigInvalidBackend(t *testing.T) {
	path := writeConfigFile(t, `
[cache]
backend = "memcached"
`)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() expected error for invalid backend")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig {
		t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidConfig)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfigFile(t, `
[cache]
backnd = "file"
`)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() expected error for unknown key")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig {
		t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidConfig)
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	t.Setenv("ISOGRID_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg := LoadConfigOrDefault()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("default Cache.Backend = %q, want %q", cfg.Cache.Backend, CacheBackendFile)
	}
}
