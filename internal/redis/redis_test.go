package redisclient

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgods/appointment-store/internal/storage"
)

// These tests talk to a real Redis and only run when REDIS_TEST_ADDR is set.
func testBackend(t *testing.T) (*BlobBackend, storage.Locker, string) {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	rdb, err := NewRedisClient(context.Background(), addr, "", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	prefix := "test:" + uuid.NewString() + ":"
	return NewBlobBackend(rdb, prefix), NewRedisKeyLocker(rdb, prefix, 2*time.Second), prefix
}

func TestBlobBackend_GetSet(t *testing.T) {
	b, _, _ := testBackend(t)
	ctx := context.Background()

	_, err := b.Get(ctx, "appointments")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, b.Set(ctx, "appointments", []byte(`{"version":1,"appointments":[]}`)))

	got, err := b.Get(ctx, "appointments")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1,"appointments":[]}`), got)
	assert.NoError(t, b.Ping(ctx))
}

func TestRedisKeyLocker_SecondHolderRejected(t *testing.T) {
	_, l, _ := testBackend(t)
	ctx := context.Background()

	err := l.WithKeyLock(ctx, "appointments", func(ctx context.Context) error {
		inner := l.WithKeyLock(ctx, "appointments", func(context.Context) error { return nil })
		assert.ErrorIs(t, inner, storage.ErrLockNotAcquired)
		return nil
	})
	require.NoError(t, err)

	// released after the first holder returns
	assert.NoError(t, l.WithKeyLock(ctx, "appointments", func(context.Context) error { return nil }))
}
