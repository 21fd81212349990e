package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/aswanig/labportal/internal/config"
	"github.com/aswanig/labportal/internal/core"
	_ "github.com/aswanig/labportal/internal/core/params" // Register the parameter catalog
	"github.com/aswanig/labportal/internal/directory"
	"github.com/aswanig/labportal/internal/logging"
	"github.com/aswanig/labportal/internal/store"
	"github.com/aswanig/labportal/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"addr", cfg.Server.Addr(),
		"store_backend", cfg.Store.Backend,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"catalog_parameters", core.Count(),
	)

	ctx := context.Background()

	// Select the submission store
	var (
		subStore core.Store
		pool     *pgxpool.Pool
	)
	if cfg.Store.UsesPostgres() {
		poolConfig, err := pgxpool.ParseConfig(cfg.Store.URL)
		if err != nil {
			slog.Error("failed to parse database URL", "error", err)
			os.Exit(1)
		}
		poolConfig.MaxConns = int32(cfg.Store.MaxConns)
		poolConfig.MinConns = int32(cfg.Store.MinConns)
		poolConfig.MaxConnLifetime = cfg.Store.MaxConnLifetime
		poolConfig.MaxConnIdleTime = cfg.Store.MaxConnIdleTime

		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			slog.Error("failed to ping database", "error", err)
			os.Exit(1)
		}

		pg := store.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			slog.Error("failed to ensure schema", "error", err)
			os.Exit(1)
		}
		subStore = pg
		slog.Info("using postgres store")
	} else {
		subStore = store.NewMemory()
		slog.Info("using in-memory store")
	}

	// Wire the core service with the injected identity directory
	dir := directory.Default()
	service := core.NewService(subStore, dir)

	if cfg.Seed.DemoData {
		if err := service.SeedDemoData(ctx); err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
		slog.Info("demo data loaded")
	}

	// Create server with config
	server := web.NewServer(service, dir, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
