package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/dossierimmo/form-gateway/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// External service configuration
	EvaluationConnectorCfg EvaluationConnectorConfig `envPrefix:"EVALUATION_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Rate limiting for the gateway surface
	RateLimitCfg RateLimitConfig `envPrefix:"RATE_LIMIT_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// EvaluationConnectorConfig points at the remote evaluation service. The
// endpoints are fixed per deployment; the readiness block only drives the
// startup health probe.
type EvaluationConnectorConfig struct {
	HTTPClientConfig
	EvaluateEndpoint string               `env:"EVALUATE_ENDPOINT" envDefault:"/api/evaluate"`
	RatesEndpoint    string               `env:"RATES_ENDPOINT" envDefault:"/api/taux-actuels"`
	HealthEndpoint   string               `env:"HEALTH_ENDPOINT" envDefault:"/api/health"`
	Readiness        pkgRetry.RetryConfig `envPrefix:"READINESS_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"10s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

// RateLimitConfig holds per-IP token bucket limits
type RateLimitConfig struct {
	PerMinute int `env:"PER_MINUTE" envDefault:"60"`
	Burst     int `env:"BURST" envDefault:"10"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.RateLimitCfg.PerMinute < 1 || cfg.RateLimitCfg.PerMinute > 600 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be between 1 and 600, got %d", cfg.RateLimitCfg.PerMinute)
	}

	if cfg.RateLimitCfg.Burst < 1 || cfg.RateLimitCfg.Burst > 100 {
		return fmt.Errorf("RATE_LIMIT_BURST must be between 1 and 100, got %d", cfg.RateLimitCfg.Burst)
	}

	if cfg.EvaluationConnectorCfg.Readiness.Attempts < 1 {
		return fmt.Errorf("EVALUATION_READINESS_ATTEMPTS must be at least 1, got %d", cfg.EvaluationConnectorCfg.Readiness.Attempts)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
