package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/coin-tracker/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Addr:            "127.0.0.1:0",
			ShutdownTimeout: time.Second,
		},
		CoinGecko: config.CoinGeckoConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second},
		Exchange:  config.ExchangeConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second, CacheTTL: time.Minute},
		Storage:   config.StorageConfig{Driver: "memory"},
		Proxy:     config.ProxyConfig{ChartTTL: time.Minute, ChartCacheCapacity: 8},
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := NewApp(context.Background(), testConfig(), log)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewApp_TelegramWithoutToken(t *testing.T) {
	cfg := testConfig()
	cfg.Telegram.Enabled = true

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := NewApp(context.Background(), cfg, log); err == nil {
		t.Fatal("expected error for empty telegram token")
	}
}

func TestNewApp_BadSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.Scheduler = config.SchedulerConfig{Enabled: true, Schedule: "not a schedule", Currencies: []string{"usd"}}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := NewApp(context.Background(), cfg, log); err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}

func TestCoinsHandlerTimeout_BelowWriteTimeout(t *testing.T) {
	tests := []struct {
		write time.Duration
		want  time.Duration
	}{
		{write: 60 * time.Second, want: 55 * time.Second},
		{write: 8 * time.Second, want: 4 * time.Second},
		{write: 0, want: 0},
	}
	for _, tt := range tests {
		got := coinsHandlerTimeout(config.ServerConfig{WriteTimeout: tt.write})
		if got != tt.want {
			t.Fatalf("write=%s: expected %s, got %s", tt.write, tt.want, got)
		}
		if tt.write > 0 && got >= tt.write {
			t.Fatalf("write=%s: handler timeout %s is not below the write deadline", tt.write, got)
		}
	}
}
