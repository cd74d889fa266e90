package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/dmp-tools/tokenpanel/internal/api/validation"
	"github.com/dmp-tools/tokenpanel/internal/logging"
)

// Config holds all configuration for the development server
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development" validate:"oneof=development production test"`
	Host        string `env:"API_HOST" envDefault:"0.0.0.0"`
	Port        string `env:"API_PORT" envDefault:"8080" validate:"required,numeric"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"loglevel"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Credentials accepted by the login endpoint
	AdminUser     string `env:"DEV_ADMIN_USER" envDefault:"admin" validate:"required"`
	AdminPassword string `env:"DEV_ADMIN_PASSWORD" validate:"required"`

	// Console sessions idle for longer than the timeout are removed
	SessionIdleTimeout     time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"24h" validate:"gt=0"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1h" validate:"gt=0"`

	// Rate limiting, per client IP
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10" validate:"gt=0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20" validate:"gt=0"`

	// Comma separated list of origins allowed by CORS, empty allows none
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"tokenpanel-devserver"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{
		"internal/config/env/.env.development",
		".env",
	}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf("internal/config/env/.env.%s", envName)}, envLocations...)
	}

	return LoadFrom(envLocations...)
}

// LoadFrom loads the first existing .env file among locations, then parses
// and validates the environment. Variables already set are not overwritten.
func LoadFrom(locations ...string) (*Config, error) {
	for _, loc := range locations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validation.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %s", logging.ErrInvalidConfig, validation.Summary(err))
	}
	return nil
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// LoggingConfig derives the logger configuration
func (c *Config) LoggingConfig() *logging.Config {
	return &logging.Config{
		Level:       c.LogLevel,
		File:        c.LogFile,
		MaxSize:     100,
		MaxBackups:  5,
		MaxAge:      30,
		LogRequests: c.LogRequests,
	}
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
