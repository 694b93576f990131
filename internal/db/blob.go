package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hackgods/appointment-store/internal/storage"
)

// BlobBackend keeps blobs in the kv_blobs table, one row per key.
type BlobBackend struct {
	pool *pgxpool.Pool
}

func NewBlobBackend(pool *pgxpool.Pool) *BlobBackend {
	return &BlobBackend{pool: pool}
}

func (b *BlobBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := b.pool.QueryRow(ctx, `
		SELECT value
		FROM kv_blobs
		WHERE key = $1
	`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("select blob %s: %w", key, err)
	}

	return value, nil
}

func (b *BlobBackend) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = now()
	`, key, value)
	if err != nil {
		return fmt.Errorf("upsert blob %s: %w", key, err)
	}
	return nil
}

func (b *BlobBackend) Ping(ctx context.Context) error {
	return b.pool.Ping(ctx)
}

func (b *BlobBackend) Name() string {
	return "postgres"
}
