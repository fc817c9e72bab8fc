package config

import (
	"os"
	"strconv"
	"strings"

	"gocorr/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig describes where the series matrix is read from
type DataConfig struct {
	File         string
	Sheet        string
	WeightColumn string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads an optional .env file, then configuration from environment
// variables, and validates it. Variables already set in the environment win
// over the .env file.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, errors.Wrap(err, "failed to load env file")
	}

	config := &Config{
		Server: *loadServerConfig(),
		Data:   *loadDataConfig(),
		Log:    *loadLogConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// loadEnvFiles loads the given files, or ./.env when none are given. A
// missing default .env is not an error.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		return godotenv.Load()
	}
	return godotenv.Load(files...)
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File:         getEnvOrDefault("DATA_FILE", ""),
		Sheet:        getEnvOrDefault("DATA_SHEET", "Sheet1"),
		WeightColumn: getEnvOrDefault("WEIGHT_COLUMN", "weight"),
	}
}

func loadLogConfig() *LogConfig {
	return &LogConfig{
		Level: strings.ToUpper(getEnvOrDefault("LOG_LEVEL", "INFO")),
	}
}

func validateConfig(config *Config) error {
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric, got " + strconv.Quote(config.Server.Port))
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be debug, release or test")
	}
	if strings.TrimSpace(config.Data.WeightColumn) == "" {
		return errors.ConfigInvalid("WEIGHT_COLUMN cannot be blank")
	}
	switch config.Log.Level {
	case "ERROR", "WARN", "INFO", "DEBUG", "TRACE":
	default:
		return errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG, TRACE")
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
