package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"quizogram-client/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  url: https://quizogram.example
  timeout: 30s
attempt:
  settle_delay: 500ms
  finalize_retries: 5
cache:
  redis_addr: localhost:6379
  ttl: 1m
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.URL != "https://quizogram.example" {
		t.Fatalf("unexpected server url %q", cfg.Server.URL)
	}
	if cfg.Attempt.FinalizeRetries != 5 {
		t.Fatalf("unexpected retries %d", cfg.Attempt.FinalizeRetries)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Fatalf("unexpected redis addr %q", cfg.Cache.RedisAddr)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  url: https://from-file.example
`)
	t.Setenv("QUIZOGRAM_SERVER_URL", "https://from-env.example")
	t.Setenv("QUIZOGRAM_SETTLE_DELAY", "2s")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.URL != "https://from-env.example" {
		t.Fatalf("expected env to win, got %q", cfg.Server.URL)
	}
	if cfg.Attempt.SettleDelay != "2s" {
		t.Fatalf("expected env settle delay, got %q", cfg.Attempt.SettleDelay)
	}
}

func TestMissingFileIsNotAnError(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.URL != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestDurationFallback(t *testing.T) {
	if d := config.Duration("", time.Minute); d != time.Minute {
		t.Fatalf("expected fallback for empty, got %v", d)
	}
	if d := config.Duration("bogus", time.Minute); d != time.Minute {
		t.Fatalf("expected fallback for malformed, got %v", d)
	}
	if d := config.Duration("90s", time.Minute); d != 90*time.Second {
		t.Fatalf("expected parsed duration, got %v", d)
	}
}
