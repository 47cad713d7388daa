package api

import (
	"os"
	"strconv"

	"github.com/mineworks/grindflow/pkg/validation"
)

// Config holds the server configuration.
type Config struct {
	Port            int
	SimServiceURL   string
	GoalStoreDriver string // "file" or "postgres"
	GoalStoreDir    string // file driver
	DatabaseURL     string // postgres driver
	CatalogPath     string // optional site catalog YAML
	LogLevel        string
}

// DefaultConfig returns the configuration used when no environment overrides
// are present.
func DefaultConfig() Config {
	return Config{
		Port:            8080,
		SimServiceURL:   "http://localhost:9090",
		GoalStoreDriver: "file",
		GoalStoreDir:    "./data/goals",
		LogLevel:        "INFO",
	}
}

// LoadConfigFromEnv builds the config from environment variables, falling
// back to defaults.
func LoadConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("GRINDFLOW_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("GRINDFLOW_SIM_URL"); v != "" {
		cfg.SimServiceURL = v
	}
	if v := os.Getenv("GRINDFLOW_GOAL_STORE"); v != "" {
		cfg.GoalStoreDriver = v
	}
	if v := os.Getenv("GRINDFLOW_GOAL_DIR"); v != "" {
		cfg.GoalStoreDir = v
	}
	if v := os.Getenv("GRINDFLOW_DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("GRINDFLOW_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("GRINDFLOW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// Validate checks the configuration, collecting every problem.
func (c Config) Validate() error {
	cv := validation.NewConfigValidator("api.Config").
		PortRange("Port", c.Port).
		Required("SimServiceURL", c.SimServiceURL).
		OneOf("GoalStoreDriver", c.GoalStoreDriver, "file", "postgres")
	if c.GoalStoreDriver == "file" {
		cv.Required("GoalStoreDir", c.GoalStoreDir)
	}
	if c.GoalStoreDriver == "postgres" {
		cv.Required("DatabaseURL", c.DatabaseURL)
	}
	return cv.Err()
}
