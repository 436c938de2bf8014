package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type KVRepo struct {
	db *sql.DB
}

func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get returns nil when key has no record.
func (r *KVRepo) Get(ctx context.Context, key string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM kv WHERE key = ?`, key)

	var (
		rec   Record
		value string
	)
	if err := row.Scan(&rec.Key, &value, &rec.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	rec.Value = []byte(value)
	return &rec, nil
}

func (r *KVRepo) Put(ctx context.Context, key string, value []byte, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), updatedAt.UTC())
	if err != nil {
		return fmt.Errorf("kv put: %w", err)
	}
	return nil
}
