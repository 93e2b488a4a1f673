package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	Unsplash   UnsplashConfig   `yaml:"unsplash"`
	Generation GenerationConfig `yaml:"generation"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"               env:"SERVER_HOST"               env-default:"0.0.0.0"`
	Port            int           `yaml:"port"               env:"SERVER_PORT"               env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"       env:"SERVER_READ_TIMEOUT"       env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"      env:"SERVER_WRITE_TIMEOUT"      env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"       env:"SERVER_IDLE_TIMEOUT"       env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"   env:"SERVER_SHUTDOWN_TIMEOUT"   env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"10"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AnthropicConfig holds language-model API settings.
type AnthropicConfig struct {
	APIKey         string        `yaml:"api_key"          env:"ANTHROPIC_API_KEY"          env-required:"true"`
	Model          string        `yaml:"model"            env:"ANTHROPIC_MODEL"            env-default:"claude-sonnet-4-20250514"`
	MaxTokens      int           `yaml:"max_tokens"       env:"ANTHROPIC_MAX_TOKENS"       env-default:"4096"`
	RequestTimeout time.Duration `yaml:"request_timeout"  env:"ANTHROPIC_REQUEST_TIMEOUT"  env-default:"60s"`
	RequestsPerSec float64       `yaml:"requests_per_sec" env:"ANTHROPIC_REQUESTS_PER_SEC" env-default:"2"`
}

// UnsplashConfig holds photo-search API settings. An empty access key is
// valid: the photo resolver then serves fallback images only.
type UnsplashConfig struct {
	AccessKey      string        `yaml:"access_key"      env:"UNSPLASH_ACCESS_KEY"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"UNSPLASH_REQUEST_TIMEOUT" env-default:"10s"`
}

// GenerationConfig holds pipeline tuning knobs.
type GenerationConfig struct {
	PhotoMaxRetries int           `yaml:"photo_max_retries" env:"GENERATION_PHOTO_MAX_RETRIES" env-default:"5"`
	ShuffleSlides   bool          `yaml:"shuffle_slides"    env:"GENERATION_SHUFFLE_SLIDES"    env-default:"false"`
	CacheTTL        time.Duration `yaml:"cache_ttl"         env:"GENERATION_CACHE_TTL"         env-default:"5m"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Anthropic.MaxTokens <= 0 {
		return fmt.Errorf("anthropic.max_tokens must be > 0 (got %d)", c.Anthropic.MaxTokens)
	}
	if c.Anthropic.RequestsPerSec <= 0 {
		return fmt.Errorf("anthropic.requests_per_sec must be > 0 (got %v)", c.Anthropic.RequestsPerSec)
	}
	if c.Generation.PhotoMaxRetries <= 0 {
		return fmt.Errorf("generation.photo_max_retries must be > 0 (got %d)", c.Generation.PhotoMaxRetries)
	}
	return nil
}
