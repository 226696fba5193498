package domain

import (
	"context"
	"log/slog"
)

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HotSpot is a ranked location, optionally placed on the map.
type HotSpot struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Geo       *Geo    `json:"geo,omitempty"`
	PlaceName string  `json:"place_name,omitempty"`
	Accuracy  float64 `json:"geo_confidence,omitempty"`
}

// EnrichHotSpots attaches coordinates to ranked locations. A nil geocoder,
// the "Unknown" bucket, lookup failures, and empty results all leave the hot
// spot without coordinates (graceful degradation).
func EnrichHotSpots(ctx context.Context, groups []GroupCount, geocoder Geocoder, region string, logger *slog.Logger) []HotSpot {
	spots := make([]HotSpot, len(groups))
	for i, g := range groups {
		spots[i] = HotSpot{Name: g.Name, Count: g.Count}
	}
	if geocoder == nil {
		return spots
	}

	for i := range spots {
		if spots[i].Name == Unknown {
			continue
		}
		result, err := geocoder.ForwardGeocode(ctx, spots[i].Name, region)
		if err != nil {
			logger.Warn("forward geocoding failed",
				"location", spots[i].Name,
				"region", region,
				"error", err,
			)
			continue
		}
		if result.Lat == 0 && result.Lon == 0 {
			continue
		}
		spots[i].Geo = &Geo{Lat: result.Lat, Lon: result.Lon}
		spots[i].PlaceName = result.PlaceName
		spots[i].Accuracy = result.Confidence
	}
	return spots
}
