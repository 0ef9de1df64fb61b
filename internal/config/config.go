package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int    `toml:"port"`
	DatabasePath string `toml:"database_path"`
	Env          string `toml:"env"`
}

// Load builds the configuration from defaults, an optional TOML file named by
// CONFIG_PATH, and finally environment variable overrides, in that order.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:   8080,
		DatabasePath: "./library.db",
		Env:          "development",
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, err
		}
		cfg.ServerPort = port
	}
	if path, ok := os.LookupEnv("DATABASE_PATH"); ok {
		cfg.DatabasePath = path
	}
	if env, ok := os.LookupEnv("APP_ENV"); ok {
		cfg.Env = env
	}

	return cfg, nil
}
