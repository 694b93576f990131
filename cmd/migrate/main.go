package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hackgods/appointment-store/internal/db"
	"github.com/hackgods/appointment-store/internal/logger"
)

func main() {
	zl, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		zl.Fatal("POSTGRES_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, dsn, db.PoolOptions{MaxConns: 2})
	if err != nil {
		zl.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := db.NewMigrator(pool, zl)
	if err != nil {
		zl.Fatal("create migrator", zap.Error(err))
	}
	defer func() { _ = migrator.Close() }()

	if err := migrator.Up(ctx); err != nil {
		zl.Fatal("migrate", zap.Error(err))
	}
}
