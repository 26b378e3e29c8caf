package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/srgjo27/hotel_inventory/internal/platform/database"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Database       database.Config
	LockTimeout    time.Duration
	Store          string
	RedisEnabled   bool
	RedisAddr      string
	CacheTTL       time.Duration
	AMQPURL        string
	AMQPExchange   string
	HTTPPort       string
	DefaultPrice   float64
	LogLevel       string
	LogDevelopment bool
}

// LoadEnvFile reads path into the process environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

func Load() (*Config, error) {
	var errs []error

	cfg := &Config{
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "hotel_inventory"),
		},
		Store:        getEnv("STORE", StorePostgres),
		RedisAddr:    fmt.Sprintf("%s:%s", getEnv("REDIS_HOST", "localhost"), getEnv("REDIS_PORT", "6379")),
		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "hotel.reservations"),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	cfg.LockTimeout = getDuration("DB_LOCK_TIMEOUT", 5*time.Second, &errs)
	cfg.CacheTTL = getDuration("CACHE_TTL", 30*time.Second, &errs)
	cfg.RedisEnabled = getBool("REDIS_ENABLED", true, &errs)
	cfg.LogDevelopment = getBool("LOG_DEVELOPMENT", false, &errs)
	cfg.DefaultPrice = getFloat("DEFAULT_NIGHT_PRICE", 100, &errs)

	if cfg.Store != StorePostgres && cfg.Store != StoreMemory {
		errs = append(errs, fmt.Errorf("STORE: unknown store %q", cfg.Store))
	}

	if cfg.DefaultPrice < 0 {
		errs = append(errs, errors.New("DEFAULT_NIGHT_PRICE: must not be negative"))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}

	return d
}

func getBool(key string, fallback bool, errs *[]error) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}

	return b
}

func getFloat(key string, fallback float64, errs *[]error) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}

	return f
}
