package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"prod-tracker/config"
	_ "prod-tracker/docs" // Swagger docs
	"prod-tracker/internal/deptcache"
	"prod-tracker/internal/deptcache/store/memory"
	"prod-tracker/internal/deptcache/store/sqlite"
	"prod-tracker/internal/httpserver"
	"prod-tracker/internal/middleware"
	prodHTTP "prod-tracker/internal/prod/delivery/http"
	"prod-tracker/internal/prod/options"
	prodRepo "prod-tracker/internal/prod/repository/graphql"
	"prod-tracker/internal/prod/usecase"
	"prod-tracker/pkg/graphql"
	"prod-tracker/pkg/log"
)

// @title       Prod Tracker API
// @description Create and edit production batches with field validation, and keep the department cache in step with every write.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Prod Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "GraphQL URL: %s", cfg.GraphQL.URL)

	// 3. Department cache
	var cache deptcache.Store
	switch cfg.Cache.Backend {
	case config.CacheBackendSQLite:
		sqliteStore, sqlErr := sqlite.NewStore(cfg.Cache.SQLitePath)
		if sqlErr != nil {
			logger.Error(ctx, "Failed to open sqlite cache: ", sqlErr)
			return
		}
		defer sqliteStore.Close()
		cache = sqliteStore
		logger.Infof(ctx, "Cache: sqlite at %s", sqliteStore.Path())
	default:
		memStore, memErr := memory.New(cfg.Cache.Size)
		if memErr != nil {
			logger.Error(ctx, "Failed to create memory cache: ", memErr)
			return
		}
		cache = memStore
		logger.Infof(ctx, "Cache: in-memory LRU, %d departments", cfg.Cache.Size)
	}

	// 4. Prod domain
	client := graphql.NewClient(cfg.GraphQL.URL, cfg.GraphQL.AccessToken, cfg.GraphQL.Timeout)
	repo := prodRepo.New(client, logger)
	loader := options.NewLoader(repo, cfg.Options.TTL, logger)
	prodUC := usecase.New(logger, repo, cache, loader, usecase.Config{
		SessionTTL:  cfg.Forms.SessionTTL,
		MaxSessions: cfg.Forms.MaxSessions,
	})
	prodHandler := prodHTTP.New(logger, prodUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg.RateLimit.PerMin),
		ProdHandler:     prodHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
