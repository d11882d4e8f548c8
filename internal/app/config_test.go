package app_test

import (
	"testing"
	"time"

	"github.com/jdgames/account-service/internal/app"
)

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := app.LoadConfig(); err == nil {
		t.Fatal("expected error when jwt secret is missing")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := app.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected default token ttl of 24h, got %s", cfg.TokenTTL)
	}
	if cfg.AppAddr != ":5000" {
		t.Errorf("expected default addr :5000, got %s", cfg.AppAddr)
	}
	if cfg.IsProduction() {
		t.Error("development must not report production")
	}
}
