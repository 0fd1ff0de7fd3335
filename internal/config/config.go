// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/quantforge/instrdef/pkg/logger"
)

// Config holds application configuration
type Config struct {
	DataDir       string // Base directory for the reference data databases (always absolute)
	RefDataDBPath string // Path to the reference data database (securities, conventions, holidays)
	FixingsDBPath string // Path to the historical fixings database
	LogLevel      string
	DevMode       bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Determine data directory with fallback logic
	// 1. Check INSTRDEF_DATA_DIR environment variable
	// 2. If not set, default to ./data
	// 3. Always resolve to absolute path
	// 4. Ensure directory exists
	dataDir := getEnv("INSTRDEF_DATA_DIR", "")
	if dataDir == "" {
		dataDir = "data"
	}

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:       absDataDir,
		RefDataDBPath: getEnv("INSTRDEF_REFDATA_DB", filepath.Join(absDataDir, "refdata.db")),
		FixingsDBPath: getEnv("INSTRDEF_FIXINGS_DB", filepath.Join(absDataDir, "fixings.db")),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DevMode:       getEnvAsBool("DEV_MODE", false),
	}

	return cfg, nil
}

// LoggerConfig maps the application config onto logger settings. Pretty
// console output follows dev mode.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:   c.LogLevel,
		Pretty:  c.DevMode,
		Service: "instrdef",
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
