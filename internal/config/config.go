package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Catalog sources
const (
	SourceSeed     = "seed"
	SourcePostgres = "postgres"
)

// Shortlist storage backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Flag names understood by Load.
const (
	FlagEnvFile       = "env-file"
	FlagCatalogSource = "catalog-source"
	FlagSeed          = "seed"
)

type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type CatalogConfig struct {
	Source string
	// Seed writes the built-in products into an empty PostgreSQL catalog.
	Seed bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

type StorageConfig struct {
	Backend string
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
}

// Addr returns host:port for the redis client
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type RateLimitConfig struct {
	Enabled       bool
	Requests      int
	WindowSeconds int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// NewFlagSet declares the command line flags of the API binary.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String(FlagEnvFile, "", "env file to load before reading the environment")
	fs.String(FlagCatalogSource, "", "catalog source: seed or postgres")
	fs.Bool(FlagSeed, false, "seed an empty postgres catalog with the built-in products")
	return fs
}

// Load reads configuration from an optional env file, the environment and
// parsed flags, in increasing order of precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if err := loadEnvFile(fs); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("CATALOG_SOURCE", SourceSeed)
	v.SetDefault("CATALOG_SEED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SCHEMA", "public")
	v.SetDefault("STORAGE_BACKEND", BackendMemory)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "catalogo")
	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	if fs != nil {
		if f := fs.Lookup(FlagCatalogSource); f != nil && f.Changed {
			if err := v.BindPFlag("CATALOG_SOURCE", f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", FlagCatalogSource, err)
			}
		}
		if f := fs.Lookup(FlagSeed); f != nil && f.Changed {
			if err := v.BindPFlag("CATALOG_SEED", f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", FlagSeed, err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
			Env:  v.GetString("SERVER_ENV"),
		},
		Catalog: CatalogConfig{
			Source: strings.ToLower(v.GetString("CATALOG_SOURCE")),
			Seed:   v.GetBool("CATALOG_SEED"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Database: v.GetString("DB_DATABASE"),
			Schema:   v.GetString("DB_SCHEMA"),
		},
		Storage: StorageConfig{
			Backend: strings.ToLower(v.GetString("STORAGE_BACKEND")),
		},
		Redis: RedisConfig{
			Host:      v.GetString("REDIS_HOST"),
			Port:      v.GetString("REDIS_PORT"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			KeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("RATE_LIMIT_ENABLED"),
			Requests:      v.GetInt("RATE_LIMIT_REQUESTS"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and limits.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceSeed, SourcePostgres:
	default:
		return fmt.Errorf("%w: unknown catalog source %q", ErrInvalidConfig, c.Catalog.Source)
	}

	switch c.Storage.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.RateLimit.Enabled && (c.RateLimit.Requests < 1 || c.RateLimit.WindowSeconds < 1) {
		return fmt.Errorf("%w: rate limit needs positive requests and window", ErrInvalidConfig)
	}

	return nil
}

// NeedsRedis reports whether any enabled component talks to redis.
func (c *Config) NeedsRedis() bool {
	return c.Storage.Backend == BackendRedis || c.RateLimit.Enabled
}

func loadEnvFile(fs *pflag.FlagSet) error {
	var path string
	if fs != nil {
		if f := fs.Lookup(FlagEnvFile); f != nil {
			path = f.Value.String()
		}
	}

	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		return nil
	}

	// A .env in the working directory is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
