package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8000" {
		t.Fatalf("expected port 8000, got %q", cfg.Port)
	}
	if cfg.DBDriver != DriverMySQL {
		t.Fatalf("expected mysql driver, got %q", cfg.DBDriver)
	}
	if cfg.JWTAlgorithm != "HS256" {
		t.Fatalf("expected HS256, got %q", cfg.JWTAlgorithm)
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m access token ttl, got %v", cfg.AccessTokenTTL)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected allowed origins %v", cfg.AllowedOrigins)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected cache disabled by default, got %q", cfg.RedisAddr)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_DRIVER", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ACCESS_TOKEN_TTL", "0s")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestLoadOriginsList(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected allowed origins %v", cfg.AllowedOrigins)
	}
}

func TestDSN(t *testing.T) {
	t.Run("mysql", func(t *testing.T) {
		cfg := Config{DBDriver: DriverMySQL, DBHost: "db", DBPort: "3307", DBUser: "app", DBPass: "pw", DBName: "boards"}
		dsn := cfg.DSN()
		if !strings.HasPrefix(dsn, "app:pw@tcp(db:3307)/boards") {
			t.Fatalf("unexpected dsn %q", dsn)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := Config{DBDriver: DriverSQLite, DBPath: "/tmp/x.db"}
		if got := cfg.DSN(); got != "/tmp/x.db" {
			t.Fatalf("expected sqlite path, got %q", got)
		}
	})
}
