package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_GetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	_, err := m.Get(ctx, "appointments")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	value := []byte(`{"version":1}`)
	require.NoError(t, m.Set(ctx, "appointments", value))

	// caller mutations must not leak into the store
	value[0] = 'X'

	got, err := m.Get(ctx, "appointments")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1}`), got)

	got[0] = 'Y'
	again, err := m.Get(ctx, "appointments")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1}`), again)

	assert.Equal(t, "memory", m.Name())
	assert.NoError(t, m.Ping(ctx))
}

func TestMemoryBackend_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemoryBackend()
	assert.ErrorIs(t, m.Set(ctx, "k", []byte("v")), context.Canceled)
	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, m.Ping(ctx), context.Canceled)
}
