package config

import (
	"log"
	"os"
	"time"
)

// Storage drivers selectable via STORAGE_DRIVER.
const (
	DriverLocal    = "local"
	DriverDynamoDB = "dynamodb"
)

type Config struct {
	Port          string
	StorageDriver string
	SQLitePath    string
	JWTSecret     string
	TokenTTL      time.Duration
	CompanyName   string
	DemoSeed      bool
}

// Load reads the process configuration from the environment, falling back to
// local-friendly defaults. godotenv has already folded .env into the
// environment by the time this runs.
func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		StorageDriver: getenv("STORAGE_DRIVER", DriverLocal),
		SQLitePath:    getenv("SQLITE_PATH", "cotizaciones.db"),
		JWTSecret:     getenv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:      getenvDuration("TOKEN_TTL", 24*time.Hour),
		CompanyName:   getenv("COMPANY_NAME", "Láminas y Cortes"),
		DemoSeed:      getenvBool("DEMO_SEED", false),
	}

	log.Printf("[config] PORT=%s STORAGE_DRIVER=%s SQLITE_PATH=%s TOKEN_TTL=%s DEMO_SEED=%v",
		cfg.Port, cfg.StorageDriver, cfg.SQLitePath, cfg.TokenTTL, cfg.DemoSeed)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func getenvBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
