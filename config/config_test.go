package config_test

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/firasghr/browserprint/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.DefaultProfile == "" {
		t.Error("DefaultProfile should be non-empty")
	}
	if cfg.RequestTimeout <= 0 {
		t.Errorf("RequestTimeout should be > 0, got %v", cfg.RequestTimeout)
	}
	if cfg.MaxRedirects <= 0 {
		t.Errorf("MaxRedirects should be > 0, got %d", cfg.MaxRedirects)
	}
	if cfg.WarmupWorkers <= 0 {
		t.Errorf("WarmupWorkers should be > 0, got %d", cfg.WarmupWorkers)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	raw := map[string]interface{}{
		"default_profile":      "firefox_120",
		"request_timeout":      int64(30 * time.Second),
		"max_redirects":        5,
		"accept_invalid_certs": false,
		"warmup_workers":       4,
	}
	f, err := os.CreateTemp(t.TempDir(), "config*.json")
	if err != nil {
		t.Fatal(err)
	}
	if err := json.NewEncoder(f).Encode(raw); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg, err := config.LoadConfig(f.Name())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultProfile != "firefox_120" {
		t.Errorf("got DefaultProfile=%q, want firefox_120", cfg.DefaultProfile)
	}
	if cfg.MaxRedirects != 5 {
		t.Errorf("got MaxRedirects=%d, want 5", cfg.MaxRedirects)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig("/nonexistent/path/config.json")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad*.json")
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("{not valid json}")
	f.Close()

	_, err = config.LoadConfig(f.Name())
	if err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}
