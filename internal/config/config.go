package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/hyeonw/detailpage-client/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Backend service configuration
	BackendCfg BackendConfig `envPrefix:"BACKEND_"`

	// Retry configuration for read-only catalog calls
	CatalogRetryCfg pkgRetry.RetryConfig `envPrefix:"CATALOG_RETRY_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Interview configuration
	TotalSteps    int `env:"INTERVIEW_TOTAL_STEPS" envDefault:"8"` // display estimate, not authoritative
	MaxImageFiles int `env:"MAX_IMAGE_FILES" envDefault:"8"`

	// Result output configuration
	OutputPath     string        `env:"OUTPUT_PATH" envDefault:"detail-page.html"`
	PreviewAddr    string        `env:"PREVIEW_ADDR" envDefault:"127.0.0.1:8787"`
	PreviewEnabled bool          `env:"PREVIEW_ENABLED" envDefault:"true"`
	TemplateTTL    time.Duration `env:"TEMPLATE_CACHE_TTL" envDefault:"5m"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// BackendConfig holds connection settings for the detail-page backend.
type BackendConfig struct {
	Url                   string        `env:"SERVICE_URL" envDefault:"http://localhost:8000"`
	Token                 string        `env:"TOKEN"`
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"15s"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	if !flag.Parsed() {
		flag.Parse()
	}

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// The client is expected to run with defaults against a local backend.
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
	if cfg.BackendCfg.Url == "" {
		return fmt.Errorf("BACKEND_SERVICE_URL must not be empty")
	}

	if cfg.TotalSteps < 1 || cfg.TotalSteps > 50 {
		return fmt.Errorf("INTERVIEW_TOTAL_STEPS must be between 1 and 50, got %d", cfg.TotalSteps)
	}

	if cfg.MaxImageFiles < 1 || cfg.MaxImageFiles > 64 {
		return fmt.Errorf("MAX_IMAGE_FILES must be between 1 and 64, got %d", cfg.MaxImageFiles)
	}

	if cfg.TemplateTTL <= 0 {
		return fmt.Errorf("TEMPLATE_CACHE_TTL must be positive, got %s", cfg.TemplateTTL)
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
