package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	CacheBackend string
	RedisAddr    string
	CacheSize    int
	CacheTTL     time.Duration

	RateLimit  int
	RateWindow time.Duration

	TableFile   string
	TableViewer string
}

// Load reads the configuration from the environment, after loading a .env
// file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnvAsInt("PORT", 8080),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		CacheBackend: strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendMemory)),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		CacheSize:    getEnvAsInt("CACHE_SIZE", 1024),
		CacheTTL:     getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		RateLimit:    getEnvAsInt("RATE_LIMIT", 5),
		RateWindow:   getEnvAsDuration("RATE_WINDOW", time.Minute),
		TableFile:    getEnv("TABLE_FILE", "AmTable.txt"),
		TableViewer:  getEnv("TABLE_VIEWER", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot fall back to a default.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}
	switch c.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("invalid CACHE_BACKEND value: %q", c.CacheBackend)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("invalid CACHE_SIZE value: %d", c.CacheSize)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("invalid RATE_LIMIT value: %d", c.RateLimit)
	}
	if c.TableFile == "" {
		return fmt.Errorf("TABLE_FILE must not be empty")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
