// Package cli implements the fishreport command-line tool.
package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishing-report-dashboard/internal/adapter/mapbox"
	"github.com/couchcryptid/fishing-report-dashboard/internal/adapter/reportfeed"
	"github.com/couchcryptid/fishing-report-dashboard/internal/config"
	"github.com/couchcryptid/fishing-report-dashboard/internal/dashboard"
	"github.com/couchcryptid/fishing-report-dashboard/internal/domain"
	"github.com/couchcryptid/fishing-report-dashboard/internal/observability"
)

// Options configures the CLI. Out receives command output and Err receives logs.
type Options struct {
	Out     io.Writer
	Err     io.Writer
	Metrics *observability.Metrics
}

type app struct {
	opts    Options
	source  string
	timeout time.Duration
}

// NewRootCmd builds the fishreport command tree. Settings come from the
// same environment variables as the server; flags override them.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NewMetricsWith(prometheus.NewRegistry())
	}
	a := &app{opts: opts}

	cmd := &cobra.Command{
		Use:           "fishreport",
		Short:         "Summarize and render fishing reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(opts.Out)
	cmd.SetErr(opts.Err)

	cmd.PersistentFlags().StringVarP(&a.source, "source", "s", "",
		"report document URL or file path (default $REPORTS_SOURCE)")
	cmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0,
		"HTTP timeout for the report source (default $REPORTS_TIMEOUT)")

	cmd.AddCommand(a.newSummaryCmd())
	cmd.AddCommand(a.newRenderCmd())
	cmd.AddCommand(a.newValidateCmd())

	return cmd
}

// load reads the environment configuration and applies flag overrides.
func (a *app) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if a.source != "" {
		cfg.ReportsSource = a.source
	}
	if a.timeout > 0 {
		cfg.ReportsTimeout = a.timeout
	}
	return cfg, observability.NewLoggerTo(a.opts.Err, cfg.LogLevel, cfg.LogFormat), nil
}

func (a *app) feed(cfg *config.Config, logger *slog.Logger) reportfeed.Feed {
	return reportfeed.New(cfg.ReportsSource, cfg.ReportsTimeout, logger)
}

func (a *app) service(cfg *config.Config, logger *slog.Logger) *dashboard.Service {
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, a.opts.Metrics, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, a.opts.Metrics)
	}

	return dashboard.New(a.feed(cfg, logger), geocoder, nil, dashboard.Options{
		Limits: domain.Limits{
			TableRows:    cfg.TableLimit,
			ActivityDays: cfg.ActivityWindowDays,
			TopLocations: cfg.TopLocations,
			TopSpecies:   cfg.TopSpecies,
		},
		BannerDuration: cfg.BannerDuration,
		Region:         cfg.MapboxRegion,
	}, logger, a.opts.Metrics)
}
