package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpLayer "studycost-agent/http"
	"studycost-agent/logging"
	"studycost-agent/repository"
	"studycost-agent/service"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
		slog.Info("Tips cache backed by Redis", "addr", addr)
	} else {
		cache = repository.NewMemoryCache()
	}

	aiService := service.NewAIService(cache)
	estimateService := service.NewEstimateService(aiService)
	estimateHandler := httpLayer.NewEstimateHandler(estimateService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/estimate",
		httpLayer.MetricsMiddleware(
			httpLayer.RateLimitMiddleware(
				rateLimiter,
				http.HandlerFunc(estimateHandler.EstimateCost),
			),
		),
	)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	addr := ":" + getEnv("PORT", "8080")
	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("🚀 API corriendo", "addr", "http://localhost"+addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Error starting server", "error", err)
		return
	case <-quit:
		slog.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Error during server shutdown", "error", err)
	}

	slog.Info("Server exited")
}
