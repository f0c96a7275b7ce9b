package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"productmetrics/docs"
	"productmetrics/internal/config"
	"productmetrics/internal/database"
	"productmetrics/internal/logging"
	"productmetrics/internal/metrics"
	"productmetrics/internal/repository"
	"productmetrics/internal/server"
)

// @title        Product Environmental Metrics API
// @version      1.0.0
// @description  CRUD API over products and their environmental metrics.
// @license.name ISC
// @BasePath     /api/v1/product-env-metrics
func main() {
	cfg := config.Load()
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, err := range errs {
			log.Println("config:", err)
		}
		log.Fatal("invalid configuration")
	}

	flush, err := logging.Init(cfg.LogMode, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer flush()

	var client *mongo.Client
	var repo repository.Repository
	switch cfg.StoreDriver {
	case config.DriverMemory:
		zap.S().Warn("using in-memory store, data is lost on exit")
		repo = repository.NewMemoryRepository()
	default:
		client, err = database.Connect(context.Background(), cfg.DBURL)
		if err != nil {
			zap.S().Fatalf("DB connection error: %v", err)
		}
		db := client.Database(cfg.DBName)
		zap.S().Infof("MongoDB connected to: %s", db.Name())

		if err := database.EnsureProductCollection(db); err != nil {
			zap.S().Warnf("product schema warning: %v", err)
		}
		repo = repository.NewMongoRepository(db)
	}

	docs.SwaggerInfo.BasePath = cfg.BasePath()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.NewRouter(cfg, repo, m),
	}

	go func() {
		zap.S().Infof("Server listening on port %s, base path %s", cfg.Port, cfg.BasePath())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Errorf("server forced to shutdown: %v", err)
	}
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			zap.S().Errorf("DB disconnect error: %v", err)
		}
	}
	zap.S().Info("Server exited")
}
