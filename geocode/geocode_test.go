package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wavecleanup/mockdata"
	"go-wavecleanup/types"
)

type fakeGeocoder struct {
	coords types.Coordinates
	err    error
	calls  int
}

func (f *fakeGeocoder) Geocode(context.Context, string) (types.Coordinates, error) {
	f.calls++
	return f.coords, f.err
}

func TestLocator_AttachesNearestHotspot(t *testing.T) {
	// Marseille, close to the Mediterranean hotspot.
	g := &fakeGeocoder{coords: types.Coordinates{Lng: 5.37, Lat: 43.30}}
	l := NewLocator(g, mockdata.Hotspots(), nil)

	r := l.Annotate(context.Background(), types.AnalysisResult{WasteType: "Plastic Bottles"}, " Marseille ")
	assert.Equal(t, "Marseille", r.Location)
	require.NotNil(t, r.Coordinates)
	require.NotNil(t, r.NearestHotspot)
	assert.Equal(t, "2", r.NearestHotspot.ID)
}

func TestLocator_FarFromEverything(t *testing.T) {
	// Ulaanbaatar.
	g := &fakeGeocoder{coords: types.Coordinates{Lng: 106.9, Lat: 47.9}}
	r := NewLocator(g, mockdata.Hotspots(), nil).Annotate(context.Background(), types.AnalysisResult{}, "Ulaanbaatar")
	require.NotNil(t, r.Coordinates)
	assert.Nil(t, r.NearestHotspot)
}

func TestLocator_GeocodeFailureKeepsText(t *testing.T) {
	g := &fakeGeocoder{err: ErrNoResults}
	r := NewLocator(g, mockdata.Hotspots(), nil).Annotate(context.Background(), types.AnalysisResult{}, "Atlantis")
	assert.Equal(t, "Atlantis", r.Location)
	assert.Nil(t, r.Coordinates)
}

func TestLocator_EmptyLocationSkipsGeocoding(t *testing.T) {
	g := &fakeGeocoder{}
	NewLocator(g, mockdata.Hotspots(), nil).Annotate(context.Background(), types.AnalysisResult{}, "  ")
	assert.Zero(t, g.calls)

	var nilLocator *Locator
	r := nilLocator.Annotate(context.Background(), types.AnalysisResult{}, "Oslo")
	assert.Equal(t, "Oslo", r.Location)
}

func TestMapsGeocoder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "Dhaka", r.URL.Query().Get("address"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":23.81,"lng":90.41}}}]}`))
	}))
	defer srv.Close()

	g, err := NewMapsGeocoderWithBaseURL("AIzaTestKey", srv.URL)
	require.NoError(t, err)

	c, err := g.Geocode(context.Background(), "Dhaka")
	require.NoError(t, err)
	assert.InDelta(t, 23.81, c.Lat, 1e-9)
	assert.InDelta(t, 90.41, c.Lng, 1e-9)
}

func TestNewMapsGeocoder_RequiresKey(t *testing.T) {
	_, err := NewMapsGeocoder("")
	assert.Error(t, err)
}
