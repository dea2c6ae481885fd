package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"spa_router_echo/internal/catalog"
	"spa_router_echo/internal/config"
	"spa_router_echo/internal/content"
	"spa_router_echo/internal/server"
	"spa_router_echo/internal/services"
	"spa_router_echo/internal/session"
)

func main() {
	// Load environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := services.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Initialize Database
	var db *gorm.DB
	if cfg.NeedsDatabase() {
		db, err = services.InitDB(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}

		// Run auto-migration
		if err := services.AutoMigrate(ctx, db, logger); err != nil {
			logger.Fatal("Failed to run database migrations", zap.Error(err))
		}
	}

	// Session backend
	var store session.Store
	switch cfg.SessionBackend {
	case config.BackendRedis:
		client, err := services.InitRedis(cfg.RedisURL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer client.Close()
		store = session.NewRedisStore(client)
	case config.BackendPostgres:
		store = session.NewGormStore(db)
	default:
		store = session.NewMemoryStore()
	}

	// Product catalog
	var products catalog.Catalog
	if cfg.CatalogBackend == config.BackendPostgres {
		products = catalog.NewGormCatalog(db)
	} else {
		products = catalog.NewStaticCatalog(catalog.DemoProducts())
	}

	pages, err := content.Load()
	if err != nil {
		logger.Fatal("Failed to render page content", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e, err := server.New(server.Deps{
		Config:   cfg,
		Log:      logger,
		Store:    store,
		Catalog:  products,
		Pages:    pages,
		Registry: registry,
	})
	if err != nil {
		logger.Fatal("Failed to build server", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}()

	logger.Info("Server starting",
		zap.String("port", cfg.Port),
		zap.String("sessions", cfg.SessionBackend),
		zap.String("catalog", cfg.CatalogBackend))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
	<-done
}
