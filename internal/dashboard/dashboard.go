// Package dashboard loads the report document and turns it into a rendered
// dashboard page, falling back to sample data when the source is unusable.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/fishing-report-dashboard/internal/domain"
	"github.com/couchcryptid/fishing-report-dashboard/internal/observability"
	"github.com/couchcryptid/fishing-report-dashboard/internal/render"
)

// LoadFailedMessage is the banner text shown while fallback data is displayed.
const LoadFailedMessage = "Failed to load dashboard data. Please try again later."

// Feed fetches the current report document.
type Feed interface {
	Fetch(ctx context.Context) (domain.Document, error)
}

// SnapshotPublisher receives a snapshot of every dashboard build.
type SnapshotPublisher interface {
	Publish(ctx context.Context, snapshot domain.Snapshot) error
}

// Options tunes panel sizes and presentation.
type Options struct {
	Limits         domain.Limits
	BannerDuration time.Duration
	// Region qualifies hot spot names for geocoding, e.g. "CA".
	Region string
	// Clock defaults to the real clock.
	Clock clockwork.Clock
}

// Loaded is the outcome of one fetch. When Fallback is set, Document holds
// the sample dataset and Reason describes why the live fetch was rejected.
type Loaded struct {
	Document domain.Document
	Fallback bool
	Reason   string
}

// Service builds dashboard pages. Geocoder and publisher are optional.
type Service struct {
	feed      Feed
	geocoder  domain.Geocoder
	publisher SnapshotPublisher
	opts      Options
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Service. A nil geocoder disables hot spot coordinates and a
// nil publisher disables snapshots.
func New(feed Feed, geocoder domain.Geocoder, publisher SnapshotPublisher, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Service {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if geocoder != nil {
		metrics.GeocodeEnabled.Set(1)
	} else {
		metrics.GeocodeEnabled.Set(0)
	}
	return &Service{
		feed:      feed,
		geocoder:  geocoder,
		publisher: publisher,
		opts:      opts,
		logger:    logger,
		metrics:   metrics,
	}
}

// Load fetches the report document once. Any failure (transport, non-2xx
// status, malformed JSON) is logged and replaced by the sample dataset, so
// Load never fails.
func (s *Service) Load(ctx context.Context) Loaded {
	doc, err := s.feed.Fetch(ctx)
	if err != nil {
		s.logger.Warn("loading reports failed, using sample data", "error", err)
		s.metrics.ReportLoads.WithLabelValues("fallback").Inc()

		doc = domain.FallbackDocument()
		s.metrics.ReportsLoaded.Set(float64(len(doc.Reports)))
		return Loaded{Document: doc, Fallback: true, Reason: err.Error()}
	}

	s.metrics.ReportLoads.WithLabelValues("live").Inc()
	s.metrics.ReportsLoaded.Set(float64(len(doc.Reports)))
	return Loaded{Document: doc}
}

// Build loads the reports and renders a page, continuing the chart handles
// from prev.
func (s *Service) Build(ctx context.Context, prev render.Charts) render.Page {
	start := s.opts.Clock.Now()
	page := s.BuildFrom(ctx, s.Load(ctx), prev)
	s.metrics.RenderDuration.Observe(s.opts.Clock.Since(start).Seconds())
	return page
}

// BuildFrom renders a page from an already loaded document.
func (s *Service) BuildFrom(ctx context.Context, loaded Loaded, prev render.Charts) render.Page {
	now := s.opts.Clock.Now()
	summary := domain.Summarize(loaded.Document, s.opts.Limits)
	spots := domain.EnrichHotSpots(ctx, summary.HotSpots, s.geocoder, s.opts.Region, s.logger)

	page := render.Page{
		LastUpdated:  summary.LastUpdated,
		TotalReports: summary.TotalReports,
		Sources:      summary.Sources,
		Fallback:     loaded.Fallback,
		Rows:         render.TableRows(summary.Recent),
		Activity:     summary.Activity,
		HotSpots:     spots,
		Species:      summary.Species,
		Charts:       render.RenderCharts(prev, summary, spots),
		RenderedAt:   now,
	}
	if loaded.Fallback {
		page.Banner = &render.Banner{
			Message:   LoadFailedMessage,
			Duration:  s.opts.BannerDuration,
			ExpiresAt: now.Add(s.opts.BannerDuration),
		}
	}

	s.publish(ctx, summary.Snapshot(loaded.Fallback, now))

	s.logger.Debug("dashboard built",
		"reports", summary.TotalReports,
		"fallback", loaded.Fallback,
		"activity_days", len(summary.Activity),
	)
	return page
}

// CheckReadiness reports whether the live report source can be fetched.
func (s *Service) CheckReadiness(ctx context.Context) error {
	if _, err := s.feed.Fetch(ctx); err != nil {
		return fmt.Errorf("report source unavailable: %w", err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, snapshot domain.Snapshot) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, snapshot); err != nil {
		s.metrics.SnapshotPublishErrors.Inc()
		s.logger.Error("publish snapshot failed", "error", err, "last_updated", snapshot.LastUpdated)
	}
}
