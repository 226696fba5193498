package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Report document location: an http(s) URL or a local file path.
	ReportsSource  string
	ReportsTimeout time.Duration

	// Dashboard panel sizes.
	TableLimit         int
	ActivityWindowDays int
	TopLocations       int
	TopSpecies         int
	BannerDuration     time.Duration

	// Mapbox geocoding configuration.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int
	MapboxRegion    string

	// Snapshot publishing.
	KafkaEnabled       bool
	KafkaBrokers       []string
	KafkaSnapshotTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	reportsTimeout, err := parsePositiveDuration("REPORTS_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	bannerDuration, err := parsePositiveDuration("BANNER_DURATION", "10s")
	if err != nil {
		return nil, err
	}
	mapboxTimeout, err := parsePositiveDuration("MAPBOX_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	tableLimit, err := parsePositiveInt("TABLE_LIMIT", 20)
	if err != nil {
		return nil, err
	}
	activityDays, err := parsePositiveInt("ACTIVITY_WINDOW_DAYS", 14)
	if err != nil {
		return nil, err
	}
	topLocations, err := parsePositiveInt("TOP_LOCATIONS", 5)
	if err != nil {
		return nil, err
	}
	topSpecies, err := parsePositiveInt("TOP_SPECIES", 6)
	if err != nil {
		return nil, err
	}

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	mapboxEnabled := mapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		mapboxEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		ReportsSource:  sharedcfg.EnvOrDefault("REPORTS_SOURCE", "data/fishing_reports.json"),
		ReportsTimeout: reportsTimeout,

		TableLimit:         tableLimit,
		ActivityWindowDays: activityDays,
		TopLocations:       topLocations,
		TopSpecies:         topSpecies,
		BannerDuration:     bannerDuration,

		MapboxToken:     mapboxToken,
		MapboxEnabled:   mapboxEnabled,
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: parseMapboxCacheSize(),
		MapboxRegion:    sharedcfg.EnvOrDefault("MAPBOX_REGION", "CA"),

		KafkaEnabled:       os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSnapshotTopic: sharedcfg.EnvOrDefault("KAFKA_SNAPSHOT_TOPIC", "fishing-dashboard-snapshots"),
	}

	if cfg.ReportsSource == "" {
		return nil, errors.New("REPORTS_SOURCE is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, errors.New("LOG_FORMAT must be json or text")
	}
	if cfg.MapboxEnabled && cfg.MapboxToken == "" {
		return nil, errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
	}
	if cfg.KafkaEnabled && cfg.KafkaSnapshotTopic == "" {
		return nil, errors.New("KAFKA_SNAPSHOT_TOPIC is required when KAFKA_ENABLED is true")
	}

	return cfg, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", key)
	}
	return n, nil
}

func parseMapboxCacheSize() int {
	if s := os.Getenv("MAPBOX_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
