package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mshaler/isogrid/pkg/errors"
	"github.com/mshaler/isogrid/pkg/grid"
)

// =============================================================================
// Config File
// =============================================================================

// Cache backends selectable in config.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Config is the isogrid configuration, loaded from
// ~/.config/isogrid/config.toml when present.
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[store]
//	mongo_uri = "mongodb://localhost:27017"
//
//	[template]
//	data_col_width = "minmax(120px, 1fr)"
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Cache    CacheConfig    `toml:"cache"`
	Store    StoreConfig    `toml:"store"`
	Template TemplateConfig `toml:"template"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects and configures the layout cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// StoreConfig selects the document store backend. An empty MongoURI means
// the in-memory store.
type StoreConfig struct {
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// TemplateConfig overrides default track sizes.
type TemplateConfig struct {
	HeaderColWidth  string `toml:"header_col_width"`
	DataColWidth    string `toml:"data_col_width"`
	HeaderRowHeight string `toml:"header_row_height"`
	DataRowHeight   string `toml:"data_row_height"`
}

// TemplateOptions converts the config section to engine options.
func (tc TemplateConfig) TemplateOptions() grid.TemplateOptions {
	return grid.TemplateOptions{
		HeaderColWidth:  grid.TrackSize(tc.HeaderColWidth),
		DataColWidth:    grid.TrackSize(tc.DataColWidth),
		HeaderRowHeight: grid.TrackSize(tc.HeaderRowHeight),
		DataRowHeight:   grid.TrackSize(tc.DataRowHeight),
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache:  CacheConfig{Backend: CacheBackendFile, RedisAddr: "localhost:6379"},
	}
}

// configPath returns the config file location. The ISOGRID_CONFIG environment
// variable overrides the XDG default.
func configPath() (string, error) {
	if p := os.Getenv("ISOGRID_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the config file at path, layered over defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the standard config file, falling back to
// defaults when it does not exist. Parse errors also fall back, so a broken
// config never blocks the CLI; serve surfaces them explicitly.
func LoadConfigOrDefault() Config {
	path, err := configPath()
	if err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendNone:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid cache backend %q (want file, redis, or none)", c.Cache.Backend)
	}
}
