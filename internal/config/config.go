package config

import "os"

// Config holds the runtime settings, read from environment variables
// (a .env file is loaded by main before this runs).
type Config struct {
	Port     string
	Database DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Load reads the configuration from the environment, falling back to
// local-dev defaults.
func Load() *Config {
	return &Config{
		Port: getenv("PORT", "8080"),
		Database: DatabaseConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "postgres"),
			Password: getenv("DB_PASSWORD", "password"),
			Name:     getenv("DB_NAME", "jobtrack"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
