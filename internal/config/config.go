package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds every environment-driven setting the server needs.
type Config struct {
	AppEnv string
	Port   string

	PgHost     string
	PgPort     string
	PgUser     string
	PgPassword string
	PgDB       string

	RedisAddr     string
	RedisPassword string

	JWTSecret        string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

// Load reads configuration from the environment. Call godotenv.Load first
// if a .env file should be honoured.
func Load() *Config {
	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		PgHost:     getEnv("PG_HOST", "localhost"),
		PgPort:     getEnv("PG_PORT", "5432"),
		PgUser:     getEnv("PG_USER", "newskoop"),
		PgPassword: getEnv("PG_PASSWORD", ""),
		PgDB:       getEnv("PG_DB", "newskoop"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	return cfg
}

// PostgresDSN builds the connection string shared by sqlx and GORM.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PgUser, c.PgPassword, c.PgHost, c.PgPort, c.PgDB)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
