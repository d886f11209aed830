package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"ledger/internal/cache"
	"ledger/internal/config"
	"ledger/internal/database"
	"ledger/internal/logger"
	"ledger/internal/server"
)

func gracefulShutdown(apiServer *http.Server, db database.Service, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	slog.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	db.Close()

	slog.Info("Server exiting")
	done <- true
}

func main() {
	log := logger.New()
	logger.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to database")

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("Failed to apply database schema", "error", err)
		os.Exit(1)
	}

	cacheStore := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if status := cacheStore.Health(ctx); status["status"] != "up" {
		slog.Warn("Redis unavailable, list caching disabled", "error", status["error"])
		cacheStore = nil
	} else {
		slog.Info("Connected to Redis", "addr", cfg.RedisAddr)
	}

	apiServer := server.New(cfg, db, cacheStore)

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, db, done)

	slog.Info("Ledger service listening", "port", cfg.Port)
	if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Graceful shutdown complete")
}
