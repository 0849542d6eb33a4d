package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBPath string
}

// Load reads configuration from the environment with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/discstats.db"
	}

	return &Config{
		Port:   port,
		DBPath: dbPath,
	}
}
