package main

import (
	"context"
	"log"
	"time"

	"solarmarket-shipping/internal/core/cache"
	"solarmarket-shipping/internal/core/config"
	"solarmarket-shipping/internal/core/database"
	"solarmarket-shipping/internal/core/logger"
	"solarmarket-shipping/internal/core/server"
	"solarmarket-shipping/internal/features/shipping/adapters"
	shippinghandler "solarmarket-shipping/internal/features/shipping/handler"
	shippingservice "solarmarket-shipping/internal/features/shipping/service"

	"go.uber.org/zap"
)

// @title SolarMarket Shipping API
// @version 1.0
// @description Shipping-rate resolution and cost calculation for the SolarMarket marketplace.
// @contact.name API Support
// @contact.email support@solarmarket.africa
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := context.Background()

	// Initialize Postgres rate store
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		l.Fatal("Failed to connect to Postgres", zap.Error(err))
	}
	defer pool.Close()

	// Initialize Redis rate cache
	redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		l.Fatal("Redis ping failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Marketplace Adapter and run Health Check
	marketplace := adapters.NewMarketplaceAdapter(cfg.Marketplace)
	if err := marketplace.HealthCheck(); err != nil {
		l.Fatal("Marketplace Health Check Failed", zap.Error(err))
	}
	l.Info("Marketplace connection verified")

	// Initialize repositories: Postgres behind the Redis decorator
	rateRepo := adapters.NewCachedRateRepository(
		adapters.NewPostgresRateRepository(pool),
		redisCache,
		time.Duration(cfg.RateCacheTTLSeconds)*time.Second,
	)

	// Initialize Shipping Service & Handler
	shippingSvc := shippingservice.NewShippingService(marketplace, rateRepo, cfg.CurrencySymbol)
	shippingHdl := shippinghandler.NewShippingHandler(shippingSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/shipping/quote", shippingHdl.QuoteShipping)
	srv.App.Get("/suppliers/:id/shipping-rates", shippingHdl.ListSupplierRates)
	srv.App.Post("/suppliers/:id/shipping-rates", shippingHdl.SaveSupplierRate)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
