package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	LogLevel    string
	LogFile     string
	AutoMigrate bool
	Import      ImportConfig
}

type ImportConfig struct {
	BaseDir       string
	Workers       int
	ChunkSize     int
	LeaseDuration time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTTTL:      time.Duration(getEnvInt("JWT_TTL_MINUTES", 24*60)) * time.Minute,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", true),
		Import: ImportConfig{
			BaseDir:       getEnv("IMPORT_BASE_DIR", "."),
			Workers:       getEnvInt("IMPORT_WORKERS", 4),
			ChunkSize:     getEnvInt("IMPORT_CHUNK_SIZE", 10000),
			LeaseDuration: time.Duration(getEnvInt("IMPORT_JOB_LEASE_SECONDS", 60)) * time.Second,
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

func getEnv(key string, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
