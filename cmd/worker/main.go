package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/felipesilva4/desafio-aiqfome/internal/config"
	"github.com/felipesilva4/desafio-aiqfome/internal/events"
	"github.com/felipesilva4/desafio-aiqfome/pkg/logger"
)

var activityCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "client_activity_events_total",
		Help: "Total number of client activity events consumed",
	},
	[]string{"event_type"},
)

// The activity worker consumes client activity events and exposes them as
// Prometheus counters, giving product usage numbers without touching the
// API service's database.
func main() {
	cfg := config.Load()

	logger.Init("favorites-worker", cfg.Environment, cfg.LogLevel)

	if len(cfg.KafkaBrokers) == 0 {
		logger.Logger.Fatal().Msg("KAFKA_BROKERS is required for the activity worker")
	}

	consumer, err := events.NewConsumer(cfg.KafkaBrokers, "favorites-activity-worker", []string{events.TopicClientActivity})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to kafka")
	}
	defer consumer.Close()

	count := func(ctx context.Context, event events.ClientActivityEvent) error {
		activityCounter.WithLabelValues(event.EventType).Inc()
		logger.Info(ctx).
			Str("event_type", event.EventType).
			Uint("client_id", event.ClientID).
			Int64("product_id", event.ProductID).
			Msg("Client activity recorded")
		return nil
	}
	consumer.RegisterHandler(events.EventTypeFavoriteAdded, count)
	consumer.RegisterHandler(events.EventTypeFavoriteRemoved, count)
	consumer.RegisterHandler(events.EventTypeClientDeleted, count)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start consumer")
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		port := cfg.HTTPPort
		logger.Logger.Info().Str("port", port).Msg("Worker metrics server starting")
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down worker...")
}
