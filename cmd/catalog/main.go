package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httpDelivery "github.com/pmslab/catalog-service/internal/catalog/delivery/http"
	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/internal/catalog/repository"
	"github.com/pmslab/catalog-service/kafka"
	"github.com/pmslab/catalog-service/pkg/config"
	"github.com/pmslab/catalog-service/pkg/database"
	"github.com/pmslab/catalog-service/pkg/logger"
	"github.com/pmslab/catalog-service/pkg/tracing"
)

func main() {
	// .env is optional, real deployments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Service.Name, cfg.Log.Development)
	logger.SetLevel(cfg.Log.Level)

	logger.Logger.Info().
		Str("service", cfg.Service.Name).
		Int("port", cfg.Service.Port).
		Msg("Starting catalog service")

	if cfg.Tracing.Enabled {
		tp, err := tracing.Init(cfg.Service.Name, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tracing.Shutdown(ctx, tp); err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
				}
			}()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	client, db, err := database.Connect(ctx, database.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	cancel()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		database.Disconnect(ctx, client)
	}()

	productRepo := repository.NewMongoProductRepository(db)
	categoryRepo := repository.NewMongoCategoryRepository(db)
	providerRepo := repository.NewMongoProviderRepository(db)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	for _, idx := range []interface {
		EnsureIndexes(context.Context) error
	}{productRepo, categoryRepo, providerRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			cancel()
			logger.Logger.Fatal().Err(err).Msg("Failed to create indexes")
		}
	}
	cancel()

	var products domain.ProductRepository = productRepo
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		products = repository.NewCachedProductRepository(productRepo, rdb, 5*time.Minute)
		logger.Logger.Info().Str("addr", cfg.Redis.Address).Msg("Product cache enabled")
	}

	var events *kafka.Publisher
	if cfg.Kafka.Enabled {
		events, err = kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to Kafka, events disabled")
			events = nil
		} else {
			defer events.Close()
			logger.Logger.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Event publishing enabled")
		}
	}

	metrics := httpDelivery.NewMetrics()
	router := httpDelivery.NewRouter(httpDelivery.RouterDeps{
		Products:    products,
		Categories:  categoryRepo,
		Providers:   providerRepo,
		Events:      events,
		MongoClient: client,
		Metrics:     metrics,
		AuthConfig:  cfg.Auth,
	})
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)
	if cfg.Tracing.Enabled {
		handler = otelhttp.NewHandler(handler, "catalog-http")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Service.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
