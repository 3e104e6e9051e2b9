package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every setting the service binaries read from the
// environment. A .env file is honored when present, real environment
// variables win.
type Config struct {
	Postgres PostgresConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Consul   ConsulConfig
	Stripe   StripeConfig
	JWT      JWTConfig

	GatewayPort   int
	ProductPort   int
	OrderPort     int
	InventoryPort int
	AuthPort      int

	InventoryServiceURL string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Host string
	Port int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type ConsulConfig struct {
	Host string
	Port int
}

type StripeConfig struct {
	APIKey        string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

type JWTConfig struct {
	Secret string
}

// Load reads configuration from the environment with local-dev defaults.
func Load() *Config {
	// Missing .env is fine outside local dev.
	_ = godotenv.Load()

	return &Config{
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "cartify"),
			Password: getEnv("POSTGRES_PASSWORD", "cartify"),
			DBName:   getEnv("POSTGRES_DB", "cartify"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnvInt("REDIS_PORT", 6379),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Consul: ConsulConfig{
			Host: getEnv("CONSUL_HOST", "localhost"),
			Port: getEnvInt("CONSUL_PORT", 8500),
		},
		Stripe: StripeConfig{
			APIKey:        getEnv("STRIPE_API_KEY", ""),
			WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
			SuccessURL:    getEnv("STRIPE_SUCCESS_URL", "http://localhost:8080/api/v1/payment/success"),
			CancelURL:     getEnv("STRIPE_CANCEL_URL", "http://localhost:8080/api/v1/payment/cancel"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		},

		GatewayPort:   getEnvInt("GATEWAY_PORT", 8080),
		ProductPort:   getEnvInt("PRODUCT_SERVICE_PORT", 8081),
		OrderPort:     getEnvInt("ORDER_SERVICE_PORT", 8082),
		InventoryPort: getEnvInt("INVENTORY_SERVICE_PORT", 8083),
		AuthPort:      getEnvInt("AUTH_SERVICE_PORT", 8084),

		InventoryServiceURL: getEnv("INVENTORY_SERVICE_URL", "http://localhost:8083"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
