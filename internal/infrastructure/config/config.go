package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration values.
type Config struct {
	Port           string
	MongoURI       string
	MongoDBName    string
	ConnectTimeout time.Duration
	RateLimit      float64
}

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGODB_URI", ""),
		MongoDBName:    getEnv("MONGODB_DB_NAME", "media_catalog"),
		ConnectTimeout: time.Second * time.Duration(getEnvAsInt("MONGODB_CONNECT_TIMEOUT_SECONDS", 10)),
		RateLimit:      getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a float or return a
// default value.
func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}
