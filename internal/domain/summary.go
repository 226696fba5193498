package domain

import (
	"strings"
	"time"
)

// Limits bounds each dashboard panel.
type Limits struct {
	TableRows    int
	ActivityDays int
	TopLocations int
	TopSpecies   int
}

// DefaultLimits matches the dashboard layout: 20 table rows, 14 days of
// activity, 5 hot spots, and 6 species.
func DefaultLimits() Limits {
	return Limits{
		TableRows:    20,
		ActivityDays: 14,
		TopLocations: 5,
		TopSpecies:   6,
	}
}

// Summary bundles every aggregation the dashboard renders.
type Summary struct {
	LastUpdated    string       `json:"last_updated"`
	TotalReports   int          `json:"total_reports"`
	Sources        []string     `json:"sources"`
	Recent         []Report     `json:"recent"`
	Activity       []DayCount   `json:"activity"`
	ActivityWindow int          `json:"activity_window_days"`
	HotSpots       []GroupCount `json:"hot_spots"`
	Species        []GroupCount `json:"species"`
}

// Summarize runs all aggregations over a document.
func Summarize(doc Document, limits Limits) Summary {
	sources := doc.Sources
	if len(sources) == 0 {
		sources = DistinctSources(doc.Reports)
	}

	return Summary{
		LastUpdated:    orUnknown(strings.TrimSpace(doc.LastUpdated)),
		TotalReports:   len(doc.Reports),
		Sources:        sources,
		Recent:         RankRecent(doc.Reports, limits.TableRows),
		Activity:       CountByDay(doc.Reports, limits.ActivityDays),
		ActivityWindow: limits.ActivityDays,
		HotSpots:       CountByLocation(doc.Reports, limits.TopLocations),
		Species:        CountBySpecies(doc.Reports, limits.TopSpecies),
	}
}

// Snapshot is the published form of one dashboard build.
type Snapshot struct {
	LastUpdated  string       `json:"last_updated"`
	TotalReports int          `json:"total_reports"`
	Fallback     bool         `json:"fallback"`
	Activity     []DayCount   `json:"activity"`
	HotSpots     []GroupCount `json:"hot_spots"`
	Species      []GroupCount `json:"species"`
	GeneratedAt  time.Time    `json:"generated_at"`
}

// Snapshot captures the summary's counts at the given time.
func (s Summary) Snapshot(fallback bool, at time.Time) Snapshot {
	return Snapshot{
		LastUpdated:  s.LastUpdated,
		TotalReports: s.TotalReports,
		Fallback:     fallback,
		Activity:     s.Activity,
		HotSpots:     s.HotSpots,
		Species:      s.Species,
		GeneratedAt:  at.UTC(),
	}
}
