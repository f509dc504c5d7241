package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	CartStore   string // memory | redis | postgres
	Database    DatabaseConfig
	Redis       RedisConfig
	Catalog     CatalogConfig
	Orders      OrdersConfig
	Points      PointsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr string // "redis://..." URL or "host:port"
}

// CatalogConfig is used to call the product catalog for product details at add-to-cart time
type CatalogConfig struct {
	BaseURL    string // e.g. http://catalog:3000
	ServiceKey string // CATALOG_SERVICE_API_KEY
}

// OrdersConfig is used to submit finalized cart snapshots to the order service
type OrdersConfig struct {
	BaseURL    string // e.g. http://orders:3000; empty means checkout returns an order-creation failure
	ServiceKey string // ORDERS_SERVICE_API_KEY
}

// PointsConfig is used to call the points ledger for balance and debit
type PointsConfig struct {
	BaseURL    string // e.g. http://points:3000
	ServiceKey string // POINTS_SERVICE_API_KEY
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CART_STORE", "memory")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		CartStore:   strings.ToLower(getEnvOrViper("CART_STORE", "memory")),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "supplycart"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: strings.TrimSpace(getEnvOrViper("REDIS_ADDR", "localhost:6379")),
		},
		Catalog: CatalogConfig{
			BaseURL:    strings.TrimSpace(getEnvOrViper("CATALOG_URL", "")),
			ServiceKey: strings.TrimSpace(getEnvOrViper("CATALOG_SERVICE_API_KEY", "")),
		},
		Orders: OrdersConfig{
			BaseURL:    strings.TrimSpace(getEnvOrViper("ORDERS_URL", "")),
			ServiceKey: strings.TrimSpace(getEnvOrViper("ORDERS_SERVICE_API_KEY", "")),
		},
		Points: PointsConfig{
			BaseURL:    strings.TrimSpace(getEnvOrViper("POINTS_URL", "")),
			ServiceKey: strings.TrimSpace(getEnvOrViper("POINTS_SERVICE_API_KEY", "")),
		},
	}

	// Validate required fields
	switch cfg.CartStore {
	case "memory", "redis", "postgres":
	default:
		return nil, fmt.Errorf("CART_STORE must be one of memory, redis, postgres; got %q", cfg.CartStore)
	}
	if cfg.CartStore == "redis" && cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required when CART_STORE=redis")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
