// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	AI         AIConfig         `mapstructure:"ai"`
	Cache      CacheConfig      `mapstructure:"cache"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	EnableCORS      bool          `mapstructure:"enable_cors"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// DatabaseConfig contains catalog database configuration
type DatabaseConfig struct {
	Driver             string        `mapstructure:"driver"`
	Path               string        `mapstructure:"path"`
	MaxOpenConns       int           `mapstructure:"max_open_conns"`
	MaxIdleConns       int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `mapstructure:"conn_max_lifetime"`
	LogLevel           string        `mapstructure:"log_level"`
	SlowQueryThreshold time.Duration `mapstructure:"slow_query_threshold"`
	AutoMigrate        bool          `mapstructure:"auto_migrate"`
}

// CatalogConfig controls how the dish catalog is loaded and seeded
type CatalogConfig struct {
	// Source selects where dishes are read from: "file" or "database".
	Source string `mapstructure:"source"`
	// Path is the JSON catalog file, used both as the file source and
	// as seed data when the database starts empty.
	Path          string `mapstructure:"path"`
	SeedOnStartup bool   `mapstructure:"seed_on_startup"`
}

// AIConfig contains meal description model configuration. The client
// speaks the OpenAI chat completions API, which local Ollama also serves.
type AIConfig struct {
	Enable         bool          `mapstructure:"enable"`
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	MaxTokens      int           `mapstructure:"max_tokens"`
	Temperature    float64       `mapstructure:"temperature"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	EnableCache    bool          `mapstructure:"enable_cache"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
}

// CacheConfig contains description cache configuration
type CacheConfig struct {
	// Backend is "memory" or "redis".
	Backend       string        `mapstructure:"backend"`
	RedisHost     string        `mapstructure:"redis_host"`
	RedisPort     int           `mapstructure:"redis_port"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	DialTimeout   time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
	PoolSize      int           `mapstructure:"pool_size"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enable         bool `mapstructure:"enable"`
	RequestsPerMin int  `mapstructure:"requests_per_min"`
	BurstSize      int  `mapstructure:"burst_size"`
}

// MonitoringConfig contains monitoring configuration
type MonitoringConfig struct {
	EnableMetrics   bool   `mapstructure:"enable_metrics"`
	MetricsPath     string `mapstructure:"metrics_path"`
	HealthCheckPath string `mapstructure:"health_check_path"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/platewise")
	}

	v.SetEnvPrefix("PLATEWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Platewise")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.max_header_bytes", 1<<20) // 1MB
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.enable_cors", true)

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "platewise.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.slow_query_threshold", "100ms")
	v.SetDefault("database.auto_migrate", true)

	// Catalog defaults
	v.SetDefault("catalog.source", "database")
	v.SetDefault("catalog.path", "data/menu.json")
	v.SetDefault("catalog.seed_on_startup", true)

	// AI defaults: a local Ollama endpoint speaking the OpenAI API
	v.SetDefault("ai.enable", true)
	v.SetDefault("ai.base_url", "http://localhost:11434/v1")
	v.SetDefault("ai.model", "llama3.1:8b")
	v.SetDefault("ai.max_tokens", 220)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.request_timeout", "30s")
	v.SetDefault("ai.enable_cache", true)
	v.SetDefault("ai.cache_ttl", "24h")

	// Cache defaults
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_host", "localhost")
	v.SetDefault("cache.redis_port", 6379)
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.dial_timeout", "5s")
	v.SetDefault("cache.read_timeout", "3s")
	v.SetDefault("cache.write_timeout", "3s")
	v.SetDefault("cache.pool_size", 10)

	// Rate limit defaults
	v.SetDefault("rate_limit.enable", true)
	v.SetDefault("rate_limit.requests_per_min", 60)
	v.SetDefault("rate_limit.burst_size", 10)

	// Monitoring defaults
	v.SetDefault("monitoring.enable_metrics", true)
	v.SetDefault("monitoring.metrics_path", "/metrics")
	v.SetDefault("monitoring.health_check_path", "/health")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	switch c.Catalog.Source {
	case "file", "database":
	default:
		return fmt.Errorf("catalog.source must be 'file' or 'database'")
	}

	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("cache.backend must be 'memory' or 'redis'")
	}

	if c.Catalog.Source == "database" && c.Database.Path == "" {
		return fmt.Errorf("database.path is required when catalog.source is 'database'")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// RedisAddr returns the Redis connection address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Cache.RedisHost, c.Cache.RedisPort)
}
