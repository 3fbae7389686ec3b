package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	AutoMigrate            bool
	RedisAddr              string
	CacheTTLSeconds        int
	RateLimit              int
	ShutdownTimeoutSeconds int
}

// LoadEnvFile reads .env into the process environment when present.
func LoadEnvFile(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Println(".env file not found, using environment variables")
	}
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "0.0.0.0")
	appPort := getEnv("APP_PORT", "5000")

	cfg := Config{
		AppURL:      fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN: getEnv("DATABASE_DSN", "todolist.db"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
	}

	var err error
	if cfg.AutoMigrate, err = getEnvAsBool("DB_AUTO_MIGRATE", true); err != nil {
		return cfg, err
	}
	if cfg.CacheTTLSeconds, err = getEnvAsInt("CACHE_TTL_SECONDS", 15); err != nil {
		return cfg, err
	}
	if cfg.RateLimit, err = getEnvAsInt("RATE_LIMIT_PER_MINUTE", 0); err != nil {
		return cfg, err
	}
	if cfg.ShutdownTimeoutSeconds, err = getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20); err != nil {
		return cfg, err
	}

	return cfg, validate(cfg)
}

func validate(cfg Config) error {
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.CacheTTLSeconds <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be greater than 0")
	}
	if cfg.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}

func getEnvAsBool(key string, defaultVal bool) (bool, error) {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid boolean value for %s", key)
		}
		return b, nil
	}
	return defaultVal, nil
}
