package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultPort         = "3000"
	DefaultDatabasePath = "starwars.db"
)

const (
	defaultRequestTimeoutSeconds = 60
	defaultMaxOpenConns          = 25
	defaultMaxIdleConns          = 10
)

type Config struct {
	// DatabaseURL selects a Postgres store; empty falls back to the SQLite file at DatabasePath
	DatabaseURL  string
	DatabasePath string

	// connection pool settings
	MaxOpenConns int
	MaxIdleConns int

	// startup behaviour
	AutoMigrate bool
	SeedData    bool

	// http settings
	Port           string
	AllowedOrigins []string
	RequestTimeout time.Duration

	// logging
	LogLevel     string
	GormLogLevel string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Warn().Err(err).Msgf("Invalid %s '%s'. Using default %d.", envVar, valStr, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Warn().Err(err).Msgf("Invalid %s '%s'. Using default %t.", envVar, valStr, defaultVal)
		return defaultVal
	}
	return val
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme some hosting providers
// still hand out into the postgresql:// form
func NormalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func LoadConfig() (Config, error) {
	timeoutSeconds := getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeoutSeconds)

	cfg := Config{
		DatabaseURL:    NormalizeDatabaseURL(os.Getenv("DATABASE_URL")),
		DatabasePath:   getEnvOrDefault("DATABASE_PATH", DefaultDatabasePath),
		MaxOpenConns:   getEnvIntOrDefault("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
		MaxIdleConns:   getEnvIntOrDefault("DB_MAX_IDLE_CONNS", defaultMaxIdleConns),
		AutoMigrate:    getEnvBoolOrDefault("AUTO_MIGRATE", true),
		SeedData:       getEnvBoolOrDefault("SEED_DATA", false),
		Port:           getEnvOrDefault("PORT", DefaultPort),
		AllowedOrigins: splitOrigins(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
		LogLevel:       strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		GormLogLevel:   strings.ToLower(getEnvOrDefault("GORM_LOG_LEVEL", "warn")),
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT '%s': must be a number between 1 and 65535", cfg.Port)
	}

	return cfg, nil
}

// UsesPostgres reports whether DATABASE_URL selected the Postgres store.
func (c Config) UsesPostgres() bool {
	return c.DatabaseURL != ""
}
