package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hackgods/appointment-store/internal/api"
	"github.com/hackgods/appointment-store/internal/config"
	"github.com/hackgods/appointment-store/internal/db"
	redisclient "github.com/hackgods/appointment-store/internal/redis"
	"github.com/hackgods/appointment-store/internal/storage"
)

// Storage is the backend and locker picked from config, plus the
// connections that have to be closed on shutdown.
type Storage struct {
	Backend storage.Backend
	Locker  storage.Locker

	pool  *pgxpool.Pool
	redis *redis.Client
	log   *zap.Logger
}

// OpenStorage connects whatever cfg asks for. Redis, when configured, always
// provides the key lock, whichever backend holds the data.
func OpenStorage(ctx context.Context, cfg config.Config, log *zap.Logger) (*Storage, error) {
	s := &Storage{log: log}

	if cfg.UseRedis() {
		rdb, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("redis connection: %w", err)
		}
		s.redis = rdb
		s.Locker = redisclient.NewRedisKeyLocker(rdb, cfg.RedisKeyPrefix, cfg.LockTTL)
		log.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))
	} else {
		s.Locker = storage.NewLocalLocker()
	}

	switch cfg.StoreBackend {
	case config.BackendMemory:
		s.Backend = storage.NewMemoryBackend()
	case config.BackendRedis:
		s.Backend = redisclient.NewBlobBackend(s.redis, cfg.RedisKeyPrefix)
	case config.BackendPostgres:
		pgCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		pool, err := db.ConnectPostgres(pgCtx, cfg.PostgresDSN, db.PoolOptions{})
		cancel()
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("postgres connection: %w", err)
		}
		s.pool = pool
		log.Info("connected to Postgres")

		if cfg.MigrateOnStart {
			if err := migrate(ctx, pool, log); err != nil {
				s.Close()
				return nil, err
			}
		}
		s.Backend = db.NewBlobBackend(pool)
	default:
		s.Close()
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	return s, nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	m, err := db.NewMigrator(pool, log)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	return m.Up(ctx)
}

// Health lists readiness checks. The data backend is critical; a Redis used
// only for locking degrades readiness.
func (s *Storage) Health() []api.Dependency {
	deps := []api.Dependency{{
		Name:     s.Backend.Name(),
		Critical: true,
		Ping:     s.Backend.Ping,
	}}

	if s.redis != nil && s.Backend.Name() != "redis" {
		deps = append(deps, api.Dependency{
			Name: "redis_lock",
			Ping: func(ctx context.Context) error { return s.redis.Ping(ctx).Err() },
		})
	}
	return deps
}

func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.log.Warn("error closing redis", zap.Error(err))
		}
	}
}
