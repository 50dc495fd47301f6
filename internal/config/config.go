package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	MySQL   MySQLConfig
	Redis   RedisConfig
	Reports ReportsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MySQLConfig holds the entity store connection settings.
type MySQLConfig struct {
	DSN string
}

// RedisConfig holds the report cache connection settings. An empty Addr
// disables the cache entirely.
type RedisConfig struct {
	Addr string
}

// ReportsConfig holds reporting cache behavior.
type ReportsConfig struct {
	CacheTTL time.Duration
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	ttlRaw := getenvWithDefault("REPORT_CACHE_TTL", "30s")
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_CACHE_TTL %q: %w", ttlRaw, err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MySQL: MySQLConfig{
			DSN: getenvWithDefault("MYSQL_DSN", "root:root@tcp(localhost:3306)/records?parseTime=true"),
		},
		Redis: RedisConfig{
			Addr: getenvWithDefault("REDIS_ADDR", "localhost:6379"),
		},
		Reports: ReportsConfig{
			CacheTTL: ttl,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MySQL.DSN == "" {
		return errors.New("MYSQL_DSN must be provided")
	}

	if c.Reports.CacheTTL < 0 {
		return errors.New("REPORT_CACHE_TTL must not be negative")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
