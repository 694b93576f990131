package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hackgods/appointment-store/internal/api"
	"github.com/hackgods/appointment-store/internal/app"
	"github.com/hackgods/appointment-store/internal/appointment"
	"github.com/hackgods/appointment-store/internal/config"
	"github.com/hackgods/appointment-store/internal/logger"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	zl.Info("api-server starting up",
		zap.String("env", cfg.Env),
		zap.String("http_port", cfg.HTTPPort),
		zap.String("store_backend", cfg.StoreBackend),
	)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := app.OpenStorage(rootCtx, cfg, zl)
	if err != nil {
		zl.Fatal("storage setup failed", zap.Error(err))
	}
	defer deps.Close()

	store := appointment.NewStore(deps.Backend, deps.Locker, zl.Named("store"),
		appointment.WithStorageKey(cfg.StorageKey))

	router := api.NewRouter(api.RouterConfig{
		Store:        store,
		Logger:       zl.Named("http"),
		Dependencies: deps.Health(),
		Env:          cfg.Env,
		Version:      version,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zl.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-rootCtx.Done()

	zl.Info("shutting down api-server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
