package config

import (
	"os"
	"strconv"
)

// Config holds process-level configuration, read once at startup.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTLS      bool

	// DatabaseURL switches record persistence from Redis to Postgres.
	DatabaseURL string

	// UseMemoryStore swaps the record store for an in-process one.
	// Development only: records do not survive a restart.
	UseMemoryStore bool

	CORSAllowedOrigins string
}

// Settings holds the values the contact handlers consult on every request.
// They are re-read per request so operators can rotate the admin secret or
// adjust the published defaults without a restart.
type Settings struct {
	AdminSecret    string
	DefaultPhone   string
	DefaultMessage string
	Namespace      string
}

// Load reads process configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		UseMemoryStore: getEnvAsBool("USE_MEMORY_STORE", false),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

// LoadSettings reads the contact settings from environment variables. Called
// once per request, never cached.
func LoadSettings() Settings {
	return Settings{
		AdminSecret:    getEnv("ADMIN_SECRET", ""),
		DefaultPhone:   getEnv("DEFAULT_PHONE", ""),
		DefaultMessage: getEnv("DEFAULT_MESSAGE", "Contact us on WhatsApp"),
		Namespace:      getEnv("CONTACT_NAMESPACE", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
