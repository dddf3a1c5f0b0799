// Package config loads geoquiz configuration from defaults, an optional
// config file, a .env file, GEOQUIZ_ environment variables and CLI flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. GEOQUIZ_STORE.
const EnvPrefix = "GEOQUIZ"

// Config holds application configuration.
type Config struct {
	Env           string        `mapstructure:"env"`           // local, dev, production
	Store         string        `mapstructure:"store"`         // snapshot store URL or SQLite path
	Lang          string        `mapstructure:"lang"`          // BCP 47 language tag for the catalog
	QuestionsPath string        `mapstructure:"questions"`     // optional YAML question bank
	SnapshotKeep  int           `mapstructure:"snapshot_keep"` // snapshots kept after each save
	RedisTTL      time.Duration `mapstructure:"redis_ttl"`     // expiry of the Redis snapshot key
	Log           Log           `mapstructure:"log"`
}

// Log contains logging parameters.
type Log struct {
	File  string `mapstructure:"file"` // empty disables logging
	Level string `mapstructure:"level"`
}

// IsProduction reports whether the production logger should be used.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.SnapshotKeep < 1 {
		return fmt.Errorf("snapshot_keep must be at least 1, got %d", c.SnapshotKeep)
	}
	if c.RedisTTL < 0 {
		return fmt.Errorf("redis_ttl must not be negative, got %s", c.RedisTTL)
	}
	if strings.TrimSpace(c.Lang) == "" {
		return errors.New("lang must not be empty")
	}
	return nil
}

// NewViper returns a viper instance with defaults and environment
// handling set up. Callers may bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/geoquiz")

	v.SetDefault("env", "local")
	v.SetDefault("store", "")
	v.SetDefault("lang", "en")
	v.SetDefault("questions", "")
	v.SetDefault("snapshot_keep", 5)
	v.SetDefault("redis_ttl", "24h")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads dotenv, then configFile (or config.yaml on the search path
// when configFile is empty), and unmarshals the result.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
