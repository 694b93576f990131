package storage

import (
	"context"
	"sync"
)

// LocalLocker serializes work per key inside a single process.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]chan struct{})}
}

func (l *LocalLocker) keyLock(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[key] = ch
	}
	return ch
}

// WithKeyLock waits for the key to be free or for ctx to end.
func (l *LocalLocker) WithKeyLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	ch := l.keyLock(key)

	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return ErrLockNotAcquired
	}
	defer func() { <-ch }()

	return fn(ctx)
}
