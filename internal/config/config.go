package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/felipesilva4/desafio-aiqfome/pkg/database"
)

// Config holds all runtime configuration, loaded from environment variables
type Config struct {
	HTTPPort    string
	Environment string
	LogLevel    string

	Database database.Config
	Redis    database.RedisConfig

	// External product catalog
	ProductsAPIURL  string
	ProductCacheTTL time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	// Optional; the event publisher is disabled when empty
	KafkaBrokers []string
}

// Load reads configuration from environment variables with sane defaults
func Load() *Config {
	return &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "aiqfome"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: database.RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		ProductsAPIURL:  getEnv("PRODUCTS_API_URL", "https://fakestoreapi.com"),
		ProductCacheTTL: time.Duration(getEnvInt("PRODUCT_CACHE_TTL", 10)) * time.Minute,
		JWTSecret:       getEnv("JWT_SECRET", "change-me"),
		JWTTTL:          time.Duration(getEnvInt("JWT_TTL", 60)) * time.Minute,
		KafkaBrokers:    splitList(os.Getenv("KAFKA_BROKERS")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
