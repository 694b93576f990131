package redisclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hackgods/appointment-store/internal/storage"
)

type redisKeyLocker struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisKeyLocker creates a locker that uses one Redis key per guarded storage key
func NewRedisKeyLocker(client *redis.Client, prefix string, ttl time.Duration) storage.Locker {
	return &redisKeyLocker{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (l *redisKeyLocker) WithKeyLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	lockKey := fmt.Sprintf("%slock:%s", l.prefix, key)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire key lock: %w", err)
	}
	if !ok {
		return storage.ErrLockNotAcquired
	}

	defer func() {
		_ = l.release(context.WithoutCancel(ctx), lockKey, token)
	}()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(ctxWithTimeout)
}

var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *redisKeyLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release key lock: %w", err)
	}
	return nil
}
