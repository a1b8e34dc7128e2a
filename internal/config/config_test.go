package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/ops")
	t.Setenv("JWT_USER_SECRET", "user-secret")
	t.Setenv("JWT_DOCTOR_SECRET", "doctor-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDRESS", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.RedisAddress != "localhost:6379" {
		t.Errorf("expected default redis address, got %q", cfg.RedisAddress)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard origins, got %v", cfg.AllowedOrigins)
	}
	if string(cfg.UserTokenSecret) != "user-secret" {
		t.Errorf("unexpected user secret: %q", cfg.UserTokenSecret)
	}
}

func TestLoadSplitsOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg := Load()

	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadPanicsOnMissingDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_CONNECTION_STRING", "")

	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing DB_CONNECTION_STRING")
		}
	}()
	Load()
}

func TestLoadPanicsOnSharedSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_DOCTOR_SECRET", "user-secret")

	defer func() {
		if recover() == nil {
			t.Error("expected panic when both signing domains share a secret")
		}
	}()
	Load()
}
