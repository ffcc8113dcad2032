package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromPath_YAMLAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  addr: ":8081"
loader:
  per_page: 50
storage:
  driver: memory
scheduler:
  enabled: true
  schedule: "*/5 * * * *"
  currencies: [usd, ngn]
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Server.Addr != ":8081" {
		t.Fatalf("addr: got %q", cfg.Server.Addr)
	}
	if cfg.Loader.PerPage != 50 || cfg.Loader.TargetTotal != 500 {
		t.Fatalf("loader: got %+v", cfg.Loader)
	}
	if cfg.Loader.BackoffBase != 3*time.Second || cfg.Loader.PageDelay != time.Second {
		t.Fatalf("loader waits: got %+v", cfg.Loader)
	}
	if cfg.Storage.Driver != "memory" {
		t.Fatalf("driver: got %q", cfg.Storage.Driver)
	}
	if len(cfg.Scheduler.Currencies) != 2 || cfg.Scheduler.Currencies[1] != "ngn" {
		t.Fatalf("currencies: got %v", cfg.Scheduler.Currencies)
	}
}

func TestLoadFromPath_EnvOnly(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("STORAGE_DRIVER", "postgres")

	cfg, err := LoadFromPath("")
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Server.Addr != ":9999" || cfg.Storage.Driver != "postgres" {
		t.Fatalf("env not applied: %+v %+v", cfg.Server, cfg.Storage)
	}
	if cfg.CoinGecko.BaseURL != "https://api.coingecko.com/api/v3" {
		t.Fatalf("default base url: got %q", cfg.CoinGecko.BaseURL)
	}
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
