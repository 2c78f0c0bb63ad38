package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Kafka    KafkaConfig
	Admin    AdminConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds session signing configuration. The secret is loaded once at
// startup and never mutated afterwards.
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// KafkaConfig holds event broker configuration. Empty Brokers disables
// event publishing entirely.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// AdminConfig holds the seeded bootstrap admin account
type AdminConfig struct {
	Email    string
	Password string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		Kafka:    loadKafkaConfig(),
		Admin:    loadAdminConfig(),
	}

	log.Printf("Configuration loaded [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "tijara_market"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "60"))

	return JWTConfig{
		Secret:          getEnv(prefix+"JWT_SECRET", "default_secret"),
		AccessTokenMins: accessMins,
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// loadKafkaConfig loads event broker config
func loadKafkaConfig() KafkaConfig {
	brokers := strings.TrimSpace(getEnv("KAFKA_BROKERS", ""))

	cfg := KafkaConfig{
		Topic: getEnv("KAFKA_PRODUCT_TOPIC", "product_events"),
	}
	if brokers != "" {
		cfg.Brokers = strings.Split(brokers, ",")
	}
	return cfg
}

// loadAdminConfig loads the bootstrap admin account
func loadAdminConfig() AdminConfig {
	return AdminConfig{
		Email:    getEnv("ADMIN_EMAIL", "admin@tijara.local"),
		Password: getEnv("ADMIN_PASSWORD", "admin123456"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://shop.tijara.market"
	}
	return origins
}
