package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andestack/contactline/internal/api/router"
	"github.com/andestack/contactline/internal/app/bootstrap"
	appconfig "github.com/andestack/contactline/internal/config"
	"github.com/andestack/contactline/internal/contact"
	httpmiddleware "github.com/andestack/contactline/internal/http/middleware"
	"github.com/andestack/contactline/internal/observability/metrics"
	"github.com/andestack/contactline/internal/record"
	"github.com/andestack/contactline/pkg/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting contactline API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Initialize the record store
	redisClient := bootstrap.BuildRedisClient(context.Background(), cfg, logger, true)
	pgPool := bootstrap.BuildPostgresPool(context.Background(), cfg, logger)
	if pgPool != nil {
		defer pgPool.Close()
	}
	store := bootstrap.BuildRecordStore(redisClient, pgPool, cfg, logger)

	metricsHandler, contactMetrics := setupMetrics()

	// Throttle mutations per client address
	limiter := httpmiddleware.NewRateLimiter(1, 5)
	defer limiter.Stop()

	// Setup router
	r := buildRouter(store, cfg, logger, metricsHandler, contactMetrics, limiter)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// setupMetrics registers the contact metrics on the default registry and
// returns the scrape handler alongside them.
func setupMetrics() (http.Handler, *metrics.ContactMetrics) {
	return promhttp.Handler(), metrics.NewContactMetrics(nil)
}

func buildRouter(store record.Store, cfg *appconfig.Config, logger *logging.Logger, metricsHandler http.Handler, contactMetrics *metrics.ContactMetrics, limiter *httpmiddleware.RateLimiter) http.Handler {
	service := contact.NewService(store, logger, nil)
	contactHandler := contact.NewHandler(contact.HandlerConfig{
		Service: service,
		Logger:  logger,
		Metrics: contactMetrics,
	})

	return router.New(&router.Config{
		Logger:             logger,
		ContactHandler:     contactHandler,
		Namespace:          func() string { return appconfig.LoadSettings().Namespace },
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: bootstrap.ParseAllowedOrigins(cfg.CORSAllowedOrigins),
		MutationLimiter:    limiter,
	})
}
