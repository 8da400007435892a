// Package config loads settings for the catalog CLI and HTTP server from
// catalog.yaml, CATALOG_* environment variables, an optional .env file and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// CATALOG_DATABASE_PATH.
const EnvPrefix = "CATALOG"

// Config mirrors catalog.yaml.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig selects the SQLite file and driver.
type DatabaseConfig struct {
	Path   string `mapstructure:"path"`
	Driver string `mapstructure:"driver"` // sqlite3 (cgo) or sqlite (pure Go)
}

// ServerConfig configures the HTTP consumer.
type ServerConfig struct {
	Addr  string `mapstructure:"addr"`
	Mode  string `mapstructure:"mode"` // gin mode: debug, release or test
	Pprof bool   `mapstructure:"pprof"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

var defaults = map[string]any{
	"database.path":   "catalog.db",
	"database.driver": "sqlite3",
	"server.addr":     ":8080",
	"server.mode":     "release",
	"server.pprof":    false,
	"log.level":       "info",
	"log.format":      "text",
}

// Load reads configuration with precedence flags > env > file > defaults.
// With an empty path, catalog.yaml is looked up in ./config and the working
// directory and may be absent; an explicit path must exist. flags maps
// config keys (e.g. "database.path") to command-line flags; only flags the
// user actually set override other sources.
func Load(path string, flags map[string]*pflag.Flag) (*Config, error) {
	// .env is optional; existing environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("catalog")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for key, f := range flags {
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values that would only fail later at open or listen time.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is empty"))
	}
	switch c.Database.Driver {
	case "sqlite3", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("database.driver %q: want sqlite3 or sqlite", c.Database.Driver))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode %q: want debug, release or test", c.Server.Mode))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// NewLogger builds the process logger. Logs go to stderr so command output
// on stdout stays machine-readable.
func (c LogConfig) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}
	return l, nil
}
