// ABOUTME: Main entry point for the Stash API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stash-app-api/api"
	"stash-app-api/api/handlers"
	"stash-app-api/core/collections"
	"stash-app-api/core/extraction"
	"stash-app-api/core/extraction/page"
	"stash-app-api/core/extraction/video"
	"stash-app-api/core/interfaces"
	"stash-app-api/core/services"
	"stash-app-api/infrastructure/cache/memory"
	"stash-app-api/infrastructure/cache/redis"
	stdhttp "stash-app-api/infrastructure/http/standard"
	logruslogger "stash-app-api/infrastructure/logger/logrus"
	stdlogger "stash-app-api/infrastructure/logger/standard"
	"stash-app-api/infrastructure/storage/sqlite"
	"stash-app-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var logger interfaces.Logger
	switch cfg.Logger.Backend {
	case "logrus":
		logger = logruslogger.NewLogger(cfg.Logger.Level)
	default:
		logger = stdlogger.NewStandardLogger()
	}

	logger.Info("Starting Stash API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
	}

	store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open collection storage: %v", err)
	}
	defer store.Close()

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	videoExtractor := video.NewService(deps, video.Options{
		MaxAttempts:  cfg.Extraction.MaxAttempts,
		RetryBackoff: time.Duration(cfg.Extraction.RetryBackoffMS) * time.Millisecond,
	})
	pageExtractor := page.NewService(deps, page.Options{
		BaseURL:              cfg.Extraction.ReaderBaseURL,
		MinContentLength:     cfg.Extraction.MinContentLength,
		BlockTitleTokenLimit: cfg.Extraction.BlockTitleTokenLimit,
	})
	extractionService := extraction.NewService(videoExtractor, pageExtractor)

	collectionService := collections.NewService(store, logger)
	metadataService := services.NewMetadataService(deps)

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
	})

	extractHandler := handlers.NewExtractHandler(extractionService, cache, logger)
	extractHandler.RegisterRoutes(humaAPI)

	collectionHandler := handlers.NewCollectionHandler(collectionService, extractionService)
	collectionHandler.RegisterRoutes(humaAPI)

	metadataHandler := handlers.NewMetadataHandler(metadataService)
	metadataHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
