package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the gateway
type Config struct {
	// Server
	Port  string
	Debug bool

	// Logging
	LogJSON bool

	// Upstream services
	ParseServiceURL  string
	SearchServiceURL string
	EditsServiceURL  string

	// Timeouts and limits
	HTTPTimeoutSeconds int

	// Sessions
	SessionSecret      string
	SessionExpiryHours int
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Logging
		LogJSON: getEnvBool("LOG_JSON", false),

		// Upstream services
		ParseServiceURL:  getEnv("PARSE_SERVICE_URL", ""),
		SearchServiceURL: getEnv("SEARCH_SERVICE_URL", ""),
		EditsServiceURL:  getEnv("EDITS_SERVICE_URL", ""),

		// Timeouts and limits
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),

		// Sessions
		SessionSecret:      getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		SessionExpiryHours: getEnvInt("SESSION_EXPIRY_HOURS", 24),
	}

	// The save-edits endpoint lives on the parse service unless overridden.
	if cfg.EditsServiceURL == "" {
		cfg.EditsServiceURL = cfg.ParseServiceURL
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.ParseServiceURL == "" {
		return &ConfigError{Field: "PARSE_SERVICE_URL", Message: "PARSE_SERVICE_URL is required for resume parsing"}
	}
	if c.SearchServiceURL == "" {
		return &ConfigError{Field: "SEARCH_SERVICE_URL", Message: "SEARCH_SERVICE_URL is required for job search"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
