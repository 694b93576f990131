package redisclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hackgods/appointment-store/internal/storage"
)

// BlobBackend stores each blob as a plain Redis string under prefix+key.
type BlobBackend struct {
	client *redis.Client
	prefix string
}

func NewBlobBackend(client *redis.Client, prefix string) *BlobBackend {
	return &BlobBackend{client: client, prefix: prefix}
}

func (b *BlobBackend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, b.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

func (b *BlobBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := b.client.Set(ctx, b.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (b *BlobBackend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *BlobBackend) Name() string {
	return "redis"
}
