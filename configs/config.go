package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port             string
	Environment      string
	APIKey           string
	AdminUsername    string
	AdminPassword    string
	GoogleMapsAPIKey string
	GeocodingBaseURL string
	// Home position used by server-side refreshes when no client fix is
	// available. Defaults to the Mumbai fallback coordinate.
	DefaultLatitude  float64
	DefaultLongitude float64
	ChatReplyDelay   time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		APIKey:           getEnv("API_KEY", "default_secret_key"),
		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "admin"),
		GoogleMapsAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		GeocodingBaseURL: getEnv("GEOCODING_BASE_URL", "https://maps.googleapis.com"),
		DefaultLatitude:  getEnvFloat("DEFAULT_LATITUDE", 19.076),
		DefaultLongitude: getEnvFloat("DEFAULT_LONGITUDE", 72.8777),
		ChatReplyDelay:   getEnvDuration("CHAT_REPLY_DELAY", 1500*time.Millisecond),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
