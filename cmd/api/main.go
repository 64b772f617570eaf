package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/felipesilva4/desafio-aiqfome/internal/catalog/cache"
	catalogclient "github.com/felipesilva4/desafio-aiqfome/internal/catalog/client"
	clientHTTP "github.com/felipesilva4/desafio-aiqfome/internal/client/delivery/http"
	clientrepo "github.com/felipesilva4/desafio-aiqfome/internal/client/repository"
	"github.com/felipesilva4/desafio-aiqfome/internal/config"
	"github.com/felipesilva4/desafio-aiqfome/internal/events"
	favoriteHTTP "github.com/felipesilva4/desafio-aiqfome/internal/favorite/delivery/http"
	favoriterepo "github.com/felipesilva4/desafio-aiqfome/internal/favorite/repository"
	userHTTP "github.com/felipesilva4/desafio-aiqfome/internal/user/delivery/http"
	userrepo "github.com/felipesilva4/desafio-aiqfome/internal/user/repository"
	"github.com/felipesilva4/desafio-aiqfome/pkg/auth"
	"github.com/felipesilva4/desafio-aiqfome/pkg/database"
	"github.com/felipesilva4/desafio-aiqfome/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.Init("favorites-api", cfg.Environment, cfg.LogLevel)

	auth.Configure(cfg.JWTSecret, cfg.JWTTTL)

	// Database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Repositories and migrations
	userRepo := userrepo.NewGormUserRepository(db)
	clientRepo := clientrepo.NewGormClientRepository(db)
	favoriteRepo := favoriterepo.NewGormFavoriteRepository(db)
	for _, migrate := range []func() error{
		userRepo.AutoMigrate,
		clientRepo.AutoMigrate,
		favoriteRepo.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	// Redis product cache
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to redis")
	}
	defer redisClient.Close()
	productCache := cache.NewRedisCache(redisClient)

	// External product catalog
	catalogSource := catalogclient.NewHTTPClient(cfg.ProductsAPIURL)

	// Event publisher; optional, disabled when no brokers are configured
	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to kafka")
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// HTTP handlers
	userHandler := userHTTP.NewUserHandler(userRepo)
	clientHandler := clientHTTP.NewClientHandler(
		clientRepo, favoriteRepo, catalogSource, productCache, publisher, cfg.ProductCacheTTL)
	favoriteHandler := favoriteHTTP.NewFavoriteHandler(
		favoriteRepo, clientRepo, catalogSource, productCache, publisher, cfg.ProductCacheTTL)

	router := mux.NewRouter()
	userHandler.RegisterRoutes(router)
	clientHandler.RegisterRoutes(router)
	favoriteHandler.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      c.Handler(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("catalog", cfg.ProductsAPIURL).
			Dur("product_cache_ttl", cfg.ProductCacheTTL).
			Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}
