package geocode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"go-wavecleanup/detection"
	"go-wavecleanup/types"
)

var ErrNoResults = errors.New("no geocoding results")

// Geocoder resolves free-text places to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (types.Coordinates, error)
}

// MapsGeocoder forward-geocodes with the Google Maps Geocoding API.
type MapsGeocoder struct {
	client *maps.Client
}

func NewMapsGeocoder(apiKey string) (*MapsGeocoder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return &MapsGeocoder{client: client}, nil
}

// NewMapsGeocoderWithBaseURL points the client at another Maps endpoint.
func NewMapsGeocoderWithBaseURL(apiKey, baseURL string) (*MapsGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey), maps.WithBaseURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return &MapsGeocoder{client: client}, nil
}

func (g *MapsGeocoder) Geocode(ctx context.Context, address string) (types.Coordinates, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("geocoding %q: %w", address, err)
	}
	if len(results) == 0 {
		return types.Coordinates{}, fmt.Errorf("%w for %q", ErrNoResults, address)
	}
	loc := results[0].Geometry.Location
	return types.Coordinates{Lng: loc.Lng, Lat: loc.Lat}, nil
}

// Locator attaches the upload location and the closest hotspot to an analysis result.
type Locator struct {
	Geocoder Geocoder
	Hotspots []types.Hotspot
	MaxKM    float64
	Logger   *zap.Logger
}

func NewLocator(g Geocoder, hotspots []types.Hotspot, logger *zap.Logger) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{Geocoder: g, Hotspots: hotspots, MaxKM: detection.NearbyThresholdKM, Logger: logger}
}

// Annotate never fails the analysis: a location that cannot be resolved is kept as text only.
func (l *Locator) Annotate(ctx context.Context, r types.AnalysisResult, location string) types.AnalysisResult {
	location = strings.TrimSpace(location)
	if location == "" {
		return r
	}
	r.Location = location
	if l == nil || l.Geocoder == nil {
		return r
	}

	coords, err := l.Geocoder.Geocode(ctx, location)
	if err != nil {
		l.Logger.Warn("upload location not geocoded", zap.String("location", location), zap.Error(err))
		return r
	}
	r.Coordinates = &coords

	if near, ok := detection.NearestHotspot(coords, l.Hotspots, l.MaxKM); ok {
		r.NearestHotspot = &near
	}
	return r
}
