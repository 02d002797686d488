package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTest        Environment = "test"
	EnvProduction  Environment = "production"
)

// DefaultEnvFile is loaded when present and no other file is requested.
const DefaultEnvFile = ".env"

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Console presentation
	UI UIConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Version     string
}

// UIConfig holds console rendering settings.
type UIConfig struct {
	// NoColor disables terminal styling of headings and error lines.
	NoColor bool
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// LogFile receives log lines. Empty discards them so they never
	// interleave with the interactive transcript.
	LogFile string
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables that are already set, then builds and validates
// the configuration. An empty envFile means DefaultEnvFile.
func Load(envFile string) (*Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		// A missing default .env is normal; a missing explicit one is not.
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		App:           loadAppConfig(),
		UI:            loadUIConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func loadAppConfig() AppConfig {
	return AppConfig{
		Name:        getEnv("APP_NAME", "grade-analyzer"),
		Environment: Environment(getEnv("APP_ENV", string(EnvDevelopment))),
		Version:     getEnv("APP_VERSION", "0.1.0"),
	}
}

func loadUIConfig() UIConfig {
	return UIConfig{
		NoColor: getEnvBool("UI_NO_COLOR", getEnv("NO_COLOR", "") != ""),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		LogFile:   getEnv("LOG_FILE", ""),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch c.App.Environment {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		errs = append(errs, fmt.Sprintf("APP_ENV must be one of development, test, production (got %q)", c.App.Environment))
	}

	switch strings.ToLower(c.Observability.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("LOG_LEVEL %q is not a known level", c.Observability.LogLevel))
	}

	switch c.Observability.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be json or text (got %q)", c.Observability.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
