package db

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/NastyaGoryachaya/coin-tracker/internal/config"
	"github.com/NastyaGoryachaya/coin-tracker/internal/repository"
)

func TestOpenKV_SQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: "sqlite", AutoMigrate: true},
		SQLite:  config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "kv.db")},
	}

	kv, err := OpenKV(ctx, cfg, log)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := kv.Get(ctx, "coins_usd"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := kv.Set(ctx, "coins_usd", []byte(`[1]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "coins_usd", []byte(`[1,2]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// повторное открытие: миграции идемпотентны, данные на месте
	kv, err = OpenKV(ctx, cfg, log)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv.Close()
	got, err := kv.Get(ctx, "coins_usd")
	if err != nil || string(got) != `[1,2]` {
		t.Fatalf("unexpected value %q err=%v", got, err)
	}
}

func TestOpenKV_Unsupported(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := OpenKV(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "redis"}}, log)
	if err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
