package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	DBSource     string `toml:"db_source"`
	Port         string `toml:"port"`
	Env          string `toml:"environment"`
	StoreBackend string `toml:"store_backend"`
}

// Load builds the configuration from defaults, an optional TOML file named
// by CONFIG_FILE, and environment variables, in that order. Environment
// variables win over the file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         "8080",
		Env:          "development",
		StoreBackend: "postgres",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv("DB_SOURCE"); v != "" {
		cfg.DBSource = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("STORE_BACKEND"); v != "" {
		cfg.StoreBackend = v
	}

	if cfg.StoreBackend != "memory" && cfg.StoreBackend != "postgres" {
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	if cfg.StoreBackend == "postgres" && cfg.DBSource == "" {
		return nil, fmt.Errorf("DB_SOURCE is required for the postgres backend")
	}

	return cfg, nil
}
