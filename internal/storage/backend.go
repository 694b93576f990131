package storage

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound     = errors.New("storage key not found")
	ErrLockNotAcquired = errors.New("storage key lock not acquired")
)

// Backend is a flat key-value store holding whole serialized blobs.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Name() string
}

// Locker guards a read-modify-write cycle on one key.
type Locker interface {
	WithKeyLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
