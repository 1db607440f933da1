package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration, read from the environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Auth     AuthConfig
	News     NewsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address         string
	ContextTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds MySQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN returns the MySQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=1&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// CacheConfig holds redis connection settings.
type CacheConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	NewsTTL  time.Duration
}

// Addr returns the redis address.
func (c CacheConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// AuthConfig holds JWT settings.
type AuthConfig struct {
	JWTSecret string
	JWTTTL    time.Duration
}

// NewsConfig holds upstream news API settings.
type NewsConfig struct {
	APIKey          string
	BaseURL         string
	Timeout         time.Duration
	RefreshInterval time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Address:         getEnv("SERVER_ADDRESS", ":9090"),
			ContextTimeout:  getDurationEnv("CONTEXT_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "3306"),
			User:     getEnv("DATABASE_USER", "root"),
			Password: os.Getenv("DATABASE_PASS"),
			Name:     getEnv("DATABASE_NAME", "newsflow"),
		},
		Cache: CacheConfig{
			Host:     getEnv("CACHE_HOST", "localhost"),
			Port:     getEnv("CACHE_PORT", "6379"),
			Password: os.Getenv("CACHE_PASS"),
			DB:       getIntEnv("CACHE_DB", 0),
			NewsTTL:  getDurationEnv("NEWS_CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			JWTTTL:    getDurationEnv("JWT_TTL", 24*time.Hour),
		},
		News: NewsConfig{
			APIKey:          os.Getenv("GNEWS_API_KEY"),
			BaseURL:         getEnv("GNEWS_BASE_URL", "https://gnews.io"),
			Timeout:         getDurationEnv("GNEWS_TIMEOUT", 30*time.Second),
			RefreshInterval: getDurationEnv("NEWS_REFRESH_INTERVAL", 10*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Database.Name == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
