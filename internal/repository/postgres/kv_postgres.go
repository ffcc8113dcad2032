package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NastyaGoryachaya/coin-tracker/internal/repository"
)

type KVRepo struct {
	db *pgxpool.Pool
}

// NewKVRepo - Создаёт KV-репозиторий на основе пула соединений.
func NewKVRepo(db *pgxpool.Pool) *KVRepo {
	return &KVRepo{db: db}
}

// Get - значение по ключу из kv_store
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := r.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Set - upsert значения, updated_at выставляет база.
func (r *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query, key, value)
	return err
}

func (r *KVRepo) Close() error {
	r.db.Close()
	return nil
}
