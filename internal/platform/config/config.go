package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	Environment        string
	LogLevel           string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool
	LayoutFile         string
	StrictTotals       bool
	ShutdownTimeout    time.Duration
	ReadHeaderTimeout  time.Duration
}

// Load reads configuration from the environment after applying an
// optional dotenv file (ENV_FILE, default ".env"). Variables already set
// in the environment win over the file. A missing file is skipped; an
// unreadable or malformed one is an error.
func Load() (Config, error) {
	if err := LoadDotEnv(getEnv("ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Environment:        getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		LayoutFile:         getEnv("PAYSLIP_LAYOUT_FILE", ""),
		StrictTotals:       getEnvBool("PAYSLIP_STRICT_TOTALS", false),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		ReadHeaderTimeout:  getEnvDuration("READ_HEADER_TIMEOUT", 5*time.Second),
	}, nil
}

// LoadDotEnv applies path to the environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not supported", c.LogLevel)
	}
	if c.LayoutFile != "" {
		if _, err := os.Stat(c.LayoutFile); err != nil {
			return fmt.Errorf("PAYSLIP_LAYOUT_FILE: %w", err)
		}
	}
	return nil
}
