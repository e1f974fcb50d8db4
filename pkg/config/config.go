// Package config loads the settings shared by the ortfo-layout commands.
//
// Settings come from three layers, later layers winning:
//
//  1. [Defaults].
//  2. A TOML file, by default $XDG_CONFIG_HOME/ortfo/layout.toml.
//  3. ORTFO_* environment variables (see [EnvLayoutService] and friends).
//
// A file looks like:
//
//	[layout]
//	service = "http://localhost:8080"
//	timeout = "5s"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ortfo/gui/pkg/errors"
)

const appName = "ortfo"

// ServiceLocal selects the in-process layout service.
const ServiceLocal = "local"

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Environment variables overriding file settings.
const (
	EnvLayoutService    = "ORTFO_LAYOUT_SERVICE"
	EnvLayoutTimeout    = "ORTFO_LAYOUT_TIMEOUT"
	EnvCacheBackend     = "ORTFO_CACHE_BACKEND"
	EnvCacheDir         = "ORTFO_CACHE_DIR"
	EnvCacheTTL         = "ORTFO_CACHE_TTL"
	EnvCacheRedisAddr   = "ORTFO_CACHE_REDIS_ADDR"
	EnvCacheRedisPrefix = "ORTFO_CACHE_REDIS_PREFIX"
	EnvServerAddr       = "ORTFO_SERVER_ADDR"
	EnvLogLevel         = "ORTFO_LOG_LEVEL"
	EnvLogFile          = "ORTFO_LOG_FILE"
)

// Config holds every setting.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// LayoutConfig selects the layout service.
type LayoutConfig struct {
	// Service is "local" or the base URL of a remote layout service.
	Service string        `toml:"service"`
	Timeout time.Duration `toml:"timeout"`
}

// CacheConfig selects where computed positions are cached.
type CacheConfig struct {
	Backend     string        `toml:"backend"`
	Dir         string        `toml:"dir"`
	TTL         time.Duration `toml:"ttl"`
	RedisAddr   string        `toml:"redis_addr"`
	RedisPrefix string        `toml:"redis_prefix"`
}

// ServerConfig configures "ortfo-layout serve".
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig configures logging. File, when set, receives a copy of the log
// of long-running commands.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Layout: LayoutConfig{Service: ServiceLocal, Timeout: 10 * time.Second},
		Cache: CacheConfig{
			Backend:     CacheFile,
			Dir:         defaultCacheDir(),
			TTL:         24 * time.Hour,
			RedisPrefix: "ortfo:layout:",
		},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Path returns the default location of the configuration file.
func Path() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "layout.toml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", appName, "layout.toml")
	}
	return ""
}

func defaultCacheDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName, "layout")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", appName, "layout")
	}
	return filepath.Join(os.TempDir(), appName, "layout")
}

// Load reads the file at path over the defaults, applies environment
// overrides and validates the result. An empty path reads [Path], which may
// be missing; an explicit path must exist. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = Path()
	}
	if path != "" {
		if err := decodeFile(path, &cfg, explicit); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config, mustExist bool) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mustExist {
			return errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "%s: unknown settings %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	dur := func(name string, dst *time.Duration) error {
		v, ok := lookup(name)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", name)
		}
		*dst = d
		return nil
	}

	str(EnvLayoutService, &c.Layout.Service)
	if err := dur(EnvLayoutTimeout, &c.Layout.Timeout); err != nil {
		return err
	}
	str(EnvCacheBackend, &c.Cache.Backend)
	str(EnvCacheDir, &c.Cache.Dir)
	if err := dur(EnvCacheTTL, &c.Cache.TTL); err != nil {
		return err
	}
	str(EnvCacheRedisAddr, &c.Cache.RedisAddr)
	str(EnvCacheRedisPrefix, &c.Cache.RedisPrefix)
	str(EnvServerAddr, &c.Server.Addr)
	str(EnvLogLevel, &c.Log.Level)
	str(EnvLogFile, &c.Log.File)
	return nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Layout.Service != ServiceLocal {
		if err := errors.ValidateURL(c.Layout.Service); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "layout.service must be %q or a URL", ServiceLocal)
		}
	}
	if c.Layout.Timeout <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "layout.timeout must be positive (got %s)", c.Layout.Timeout)
	}

	switch c.Cache.Backend {
	case CacheNone:
	case CacheFile:
		if c.Cache.Dir == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.dir is required by the file backend")
		}
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.redis_addr is required by the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache.backend %q (want one of %s)",
			c.Cache.Backend, strings.Join(cacheBackends, ", "))
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl cannot be negative (got %s)", c.Cache.TTL)
	}

	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "server.addr cannot be empty")
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

var cacheBackends = []string{CacheNone, CacheFile, CacheRedis}

// CacheBackends lists the accepted cache.backend values.
func CacheBackends() []string {
	return slices.Clone(cacheBackends)
}

// ParseLevel returns the configured log level.
func (c LogConfig) ParseLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "log.level")
	}
	return level, nil
}
