package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort     int
	CORSOrigin     string
	StatInterval   time.Duration
	SeedSampleData bool
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	statInterval, err := time.ParseDuration(getEnv("STAT_INTERVAL", "30s"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:     port,
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:3000"),
		StatInterval:   statInterval,
		SeedSampleData: getEnv("SEED_SAMPLE_DATA", "false") == "true",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
