package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"sokohub/catalog"
	"sokohub/config"
	"sokohub/handlers"
	"sokohub/middleware"
	"sokohub/registration"
	"sokohub/routes"
	"sokohub/storage"
	"sokohub/store"
	"sokohub/utils"
)

// newStorageAdapter picks the persistence backend from config. A backend
// that fails to open degrades to the in-memory adapter so the storefront
// still comes up.
func newStorageAdapter() storage.Adapter {
	logger := utils.GetLogger()
	cfg := config.AppConfig

	switch cfg.StorageBackend {
	case "redis":
		adapter, err := storage.NewRedisAdapter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisStateDB)
		if err != nil {
			logger.Sugar().Warnf("main: redis storage unavailable, falling back to memory: %v", err)
			return storage.NewMemoryAdapter()
		}
		return adapter
	case "memory":
		return storage.NewMemoryAdapter()
	default:
		adapter, err := storage.NewBoltAdapter(cfg.StoragePath)
		if err != nil {
			logger.Sugar().Warnf("main: bolt storage unavailable, falling back to memory: %v", err)
			return storage.NewMemoryAdapter()
		}
		return adapter
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	adapter := newStorageAdapter()
	defer adapter.Close()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The state store over the seeded demo catalog.
	stateStore := store.New(catalog.Seed(), adapter, store.Options{
		Currency: config.AppConfig.DefaultCurrency,
		UserID:   config.AppConfig.DefaultUserID,
		Logger:   logger,
	})

	registrationService := &registration.DefaultService{
		Adapter: adapter,
		Logger:  logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog:      handlers.NewCatalogHandler(stateStore, logger),
		Cart:         handlers.NewCartHandler(stateStore, logger),
		Favorites:    handlers.NewFavoritesHandler(stateStore, logger),
		Booking:      handlers.NewBookingHandler(stateStore, logger),
		Registration: handlers.NewRegistrationHandler(registrationService, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
