package mlmodel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wavecleanup/analysis"
	"go-wavecleanup/types"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func TestClient_Analyze(t *testing.T) {
	var got MLRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Plastic Bottles": 0.12, "Fishing Nets": 0.81, "Metal Cans": 0.07}`))
	}))
	defer srv.Close()

	f := analysis.NewFile("beach.png", pngHeader, "")
	res, err := NewClient(srv.URL).Analyze(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, "beach.png", got.Filename)
	assert.Equal(t, "image/png", got.MediaType)
	assert.NotEmpty(t, got.Image)

	assert.Equal(t, "Fishing Nets", res.WasteType)
	assert.InDelta(t, 0.81, res.Confidence, 1e-9)
	assert.Equal(t, types.High, res.Severity)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Analyze(context.Background(), analysis.NewFile("a.png", pngHeader, ""))
	assert.ErrorContains(t, err, "503")
}

func TestBest(t *testing.T) {
	_, err := Best(MLResponse{})
	assert.ErrorIs(t, err, ErrNoPrediction)

	res, err := Best(MLResponse{"Glass Bottles": 0.5, "Food Containers": 0.5})
	require.NoError(t, err)
	assert.Equal(t, "Food Containers", res.WasteType)
	assert.Equal(t, types.Medium, res.Severity)

	res, err = Best(MLResponse{"Tyres": 1.7})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Equal(t, types.Medium, res.Severity)
}

func TestSeverityFor(t *testing.T) {
	assert.Equal(t, types.Low, SeverityFor("glass bottles"))
	assert.Equal(t, types.High, SeverityFor("Metal Cans"))
	assert.Equal(t, types.Medium, SeverityFor("unknown"))
}
