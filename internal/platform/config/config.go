package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"pawlog/internal/platform/logger"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port         string        `yaml:"port"`
	Timezone     string        `yaml:"timezone"`
	SeedMockFeed bool          `yaml:"seed_mock_feed"`
	Storage      StorageConfig `yaml:"storage"`
	Log          LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Driver     string `yaml:"driver"` // memory | sqlite | postgres
	Path       string `yaml:"path"`   // sqlite
	DSN        string `yaml:"dsn"`    // postgres
	QuotaBytes int64  `yaml:"quota_bytes"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

func Default() Config {
	return Config{
		Port: "8080",
		Storage: StorageConfig{
			Driver: DriverMemory,
			Path:   "data/pawlog.db",
		},
		Log: LogConfig{Level: "info", Format: "text", App: "pawlog"},
	}
}

// Load arma la config: defaults, luego el YAML (path o PAWLOG_CONFIG) y al final env.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PAWLOG_CONFIG")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	setString("PORT", &cfg.Port)
	setString("PAWLOG_TIMEZONE", &cfg.Timezone)
	setString("STORAGE_DRIVER", &cfg.Storage.Driver)
	setString("DB_PATH", &cfg.Storage.Path)
	setString("DB_DSN", &cfg.Storage.DSN)
	setString("LOG_LEVEL", &cfg.Log.Level)
	setString("LOG_FORMAT", &cfg.Log.Format)
	setString("APP_NAME", &cfg.Log.App)

	if v := os.Getenv("STORAGE_QUOTA_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: STORAGE_QUOTA_BYTES: %w", err)
		}
		cfg.Storage.QuotaBytes = n
	}
	if v := os.Getenv("SEED_MOCK_FEED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: SEED_MOCK_FEED: %w", err)
		}
		cfg.SeedMockFeed = b
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return errors.New("config: sqlite driver requires storage.path")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return errors.New("config: postgres driver requires storage.dsn")
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resuelve la zona para "hoy"; vacío = zona local del proceso.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) Addr() string { return ":" + strings.TrimPrefix(c.Port, ":") }

func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.Log.App,
	}
}
