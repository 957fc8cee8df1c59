package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Data API
	GraphQL GraphQLConfig

	// Prod tracker specifics
	Cache     CacheConfig
	Forms     FormsConfig
	Options   OptionsConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GraphQLConfig struct {
	URL         string
	AccessToken string
	Timeout     time.Duration
}

type CacheConfig struct {
	Backend    string
	Size       int
	SQLitePath string
}

type FormsConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
}

type OptionsConfig struct {
	TTL time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Data API
	cfg.GraphQL.URL = viper.GetString("graphql.url")
	cfg.GraphQL.AccessToken = viper.GetString("graphql.access_token")
	cfg.GraphQL.Timeout = viper.GetDuration("graphql.timeout")
	if token := viper.GetString("graphql_access_token"); token != "" {
		cfg.GraphQL.AccessToken = token
	}

	// Prod tracker specifics
	cfg.Cache.Backend = viper.GetString("cache.backend")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.SQLitePath = viper.GetString("cache.sqlite_path")
	cfg.Forms.SessionTTL = viper.GetDuration("forms.session_ttl")
	cfg.Forms.MaxSessions = viper.GetInt("forms.max_sessions")
	cfg.Options.TTL = viper.GetDuration("options.ttl")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.GraphQL.URL == "" {
		return fmt.Errorf("graphql.url is required")
	}
	switch cfg.Cache.Backend {
	case CacheBackendMemory:
		if cfg.Cache.Size <= 0 {
			return fmt.Errorf("cache.size must be positive")
		}
	case CacheBackendSQLite:
		if cfg.Cache.SQLitePath == "" {
			return fmt.Errorf("cache.sqlite_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown cache.backend %q", cfg.Cache.Backend)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("graphql.url", "http://localhost:4000/graphql")
	viper.SetDefault("graphql.timeout", "15s")

	viper.SetDefault("cache.backend", CacheBackendMemory)
	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.sqlite_path", "data/cache.db")
	viper.SetDefault("forms.session_ttl", "30m")
	viper.SetDefault("forms.max_sessions", 1024)
	viper.SetDefault("options.ttl", "5m")
	viper.SetDefault("rate_limit.per_min", 600)
}
