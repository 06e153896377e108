package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "PORT", "LOG_LEVEL", "DATABASE_URL", "REDIS_URL", "TOKEN_SECRET",
		shutdownSecondsEnvVar, shutdownDurationEnvVar, idemTTLSecondsEnvVar, idemTTLDurEnvVar,
		bodyLimitEnvVar, auditBufferEnvVar,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppName != defaultAppName || cfg.Port != defaultPort || cfg.LogLevel != defaultLogLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ShutdownPeriod != defaultShutdownDelay {
		t.Fatalf("expected shutdown %s, got %s", defaultShutdownDelay, cfg.ShutdownPeriod)
	}
	if cfg.IdempotencyTTL != defaultIdempotencyTTL {
		t.Fatalf("expected idempotency ttl %s, got %s", defaultIdempotencyTTL, cfg.IdempotencyTTL)
	}
	if cfg.BodyLimit != defaultBodyLimit || cfg.AuditBuffer != defaultAuditBuffer {
		t.Fatalf("unexpected limits: %+v", cfg)
	}
	if !cfg.IsDev() {
		t.Fatal("expected development environment by default")
	}
}

func TestLoadDurations(t *testing.T) {
	clearEnv(t)
	t.Setenv(shutdownSecondsEnvVar, "3")
	t.Setenv(shutdownDurationEnvVar, "1m")
	t.Setenv(idemTTLDurEnvVar, "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ShutdownPeriod != 3*time.Second {
		t.Fatalf("seconds variable should win, got %s", cfg.ShutdownPeriod)
	}
	if cfg.IdempotencyTTL != 90*time.Second {
		t.Fatalf("expected 90s, got %s", cfg.IdempotencyTTL)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		shutdownSecondsEnvVar: "soon",
		idemTTLDurEnvVar:      "forever",
		bodyLimitEnvVar:       "-1",
		auditBufferEnvVar:     "many",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoadRequiresStoresOutsideDev(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected DATABASE_URL error")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/accounts")
	if _, err := Load(); err == nil {
		t.Fatal("expected REDIS_URL error")
	}

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.IsDev() {
		t.Fatal("production must not be treated as development")
	}
}

func TestAddress(t *testing.T) {
	if got := (Config{Port: "9000"}).Address(); got != ":9000" {
		t.Fatalf("expected :9000, got %s", got)
	}
	if got := (Config{Port: ":9001"}).Address(); got != ":9001" {
		t.Fatalf("expected :9001, got %s", got)
	}
}
