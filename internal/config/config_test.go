package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.StorageDriver != DriverLocal {
		t.Fatalf("unexpected driver: %s", cfg.StorageDriver)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", cfg.TokenTTL)
	}
	if cfg.DemoSeed {
		t.Fatalf("demo seed must default off")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("STORAGE_DRIVER", DriverDynamoDB)
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("DEMO_SEED", "true")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.StorageDriver != DriverDynamoDB {
		t.Fatalf("unexpected driver: %s", cfg.StorageDriver)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("unexpected ttl: %s", cfg.TokenTTL)
	}
	if !cfg.DemoSeed {
		t.Fatalf("expected demo seed on")
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg := Load()
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", cfg.TokenTTL)
	}
}
