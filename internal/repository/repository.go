package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// KV - постоянное хранилище ключ-значение, в котором загрузчик держит агрегированный список монет.
type KV interface {
	// Get возвращает ErrNotFound, если ключа нет.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
