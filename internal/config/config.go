package config

import (
	"fmt"
	"os"
	"strconv"

	"empinsight/domain/analytics"
	"empinsight/internal"
	"empinsight/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Analytics AnalyticsConfig
	LogLevel  internal.LogLevel
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig describes the employee record source
type DataConfig struct {
	File  string
	Sheet string
}

// AnalyticsConfig holds report computation settings
type AnalyticsConfig struct {
	TrendPoints   int
	MatrixWorkers int
}

// Defaults applied when variables are unset
const (
	DefaultDataFile      = "employee_data.csv"
	DefaultPort          = "8080"
	DefaultGinMode       = "release"
	DefaultTrendPoints   = 100
	DefaultMatrixWorkers = 4
)

// LoadDotEnv reads a .env file into the environment when one exists. It
// reports whether a file was loaded; a missing file is not an error.
func LoadDotEnv(paths ...string) bool {
	return godotenv.Load(paths...) == nil
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	level, ok := internal.ParseLogLevel(getEnvOrDefault("LOG_LEVEL", "INFO"))
	if !ok {
		return nil, errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG, TRACE")
	}

	trendPoints, err := getEnvInt("TREND_POINTS", DefaultTrendPoints)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analytics configuration")
	}
	workers, err := getEnvInt("MATRIX_WORKERS", DefaultMatrixWorkers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analytics configuration")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", DefaultPort),
			GinMode: getEnvOrDefault("GIN_MODE", DefaultGinMode),
		},
		Data: DataConfig{
			File:  getEnvOrDefault("DATA_FILE", DefaultDataFile),
			Sheet: os.Getenv("DATA_SHEET"),
		},
		Analytics: AnalyticsConfig{
			TrendPoints:   trendPoints,
			MatrixWorkers: workers,
		},
		LogLevel: level,
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("DATA_FILE is required")
	}
	if config.Analytics.TrendPoints < 2 || config.Analytics.TrendPoints > analytics.MaxSamplePoints {
		return errors.ConfigInvalid(fmt.Sprintf("TREND_POINTS must be between 2 and %d", analytics.MaxSamplePoints))
	}
	if config.Analytics.MatrixWorkers < 1 {
		return errors.ConfigInvalid("MATRIX_WORKERS must be at least 1")
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be debug, release or test")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return intValue, nil
}
