package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backends de almacenamiento de sesión.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string
	AppName   string

	// Timezone en la que se interpretan fechas/horas de reservas. Vacío = local.
	Timezone string
	LeadTime time.Duration

	// StoreBackend: memory|redis|postgres. Vacío = según lo configurado.
	StoreBackend  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration
	DatabaseURL   string
}

// LoadDotEnv carga un .env si existe. Un archivo ausente no es error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		AppName:       getEnv("APP_NAME", "pet-care-scheduler"),
		Timezone:      getEnv("APP_TIMEZONE", ""),
		LeadTime:      getEnvAsDuration("LEAD_TIME", 6*time.Hour),
		StoreBackend:  strings.ToLower(strings.TrimSpace(getEnv("STORE_BACKEND", ""))),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		DatabaseURL:   getEnv("DB_DSN", ""),
	}
}

// Backend resuelve qué almacenamiento usar: STORE_BACKEND si viene; si no,
// redis si hay REDIS_ADDR, postgres si hay DB_DSN, y memoria como último caso.
func (c *Config) Backend() string {
	switch c.StoreBackend {
	case BackendMemory, BackendRedis, BackendPostgres:
		return c.StoreBackend
	}
	switch {
	case c.RedisAddr != "":
		return BackendRedis
	case c.DatabaseURL != "":
		return BackendPostgres
	default:
		return BackendMemory
	}
}

// Location devuelve la zona configurada (time.Local si no hay).
func (c *Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	return time.LoadLocation(strings.TrimSpace(c.Timezone))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
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
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
