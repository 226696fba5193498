package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/fishing-report-dashboard/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/fishing-report-dashboard/internal/adapter/kafka"
	"github.com/couchcryptid/fishing-report-dashboard/internal/adapter/mapbox"
	"github.com/couchcryptid/fishing-report-dashboard/internal/adapter/reportfeed"
	"github.com/couchcryptid/fishing-report-dashboard/internal/config"
	"github.com/couchcryptid/fishing-report-dashboard/internal/dashboard"
	"github.com/couchcryptid/fishing-report-dashboard/internal/domain"
	"github.com/couchcryptid/fishing-report-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	feed := reportfeed.New(cfg.ReportsSource, cfg.ReportsTimeout, logger)
	logger.Info("report source configured", "source", feed.Source(), "timeout", cfg.ReportsTimeout)

	// Hot spot geocoding is feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN.
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "region", cfg.MapboxRegion)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	var (
		publisher dashboard.SnapshotPublisher
		writer    *kafkaadapter.Writer
	)
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaSnapshotTopic, logger)
		publisher = writer
		logger.Info("snapshot publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSnapshotTopic)
	}

	svc := dashboard.New(feed, geocoder, publisher, dashboard.Options{
		Limits: domain.Limits{
			TableRows:    cfg.TableLimit,
			ActivityDays: cfg.ActivityWindowDays,
			TopLocations: cfg.TopLocations,
			TopSpecies:   cfg.TopSpecies,
		},
		BannerDuration: cfg.BannerDuration,
		Region:         cfg.MapboxRegion,
	}, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
