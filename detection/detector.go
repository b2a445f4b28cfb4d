package detection

import (
	"math"

	"go-wavecleanup/types"
)

const (
	earthRadiusKM = 6371.0
	// NearbyThresholdKM bounds how far a hotspot may be to count as nearby.
	NearbyThresholdKM = 1500.0
)

// haversineDistance returns the great-circle distance in kilometres.
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	lat1 = toRadians(lat1)
	lat2 = toRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance between two coordinates in kilometres.
func Distance(a, b types.Coordinates) float64 {
	return haversineDistance(a.Lat, a.Lng, b.Lat, b.Lng)
}

// NearestHotspot finds the closest hotspot within maxKM of point.
// Ties go to the more severe hotspot.
func NearestHotspot(point types.Coordinates, hotspots []types.Hotspot, maxKM float64) (types.NearbyHotspot, bool) {
	var (
		best     types.NearbyHotspot
		bestDist float64
		bestRank int
		found    bool
	)
	for _, h := range hotspots {
		d := Distance(point, h.Coordinates)
		if d > maxKM {
			continue
		}
		rank := h.Severity.Rank()
		if !found || d < bestDist || (d == bestDist && rank > bestRank) {
			best = types.NearbyHotspot{ID: h.ID, Name: h.Name, DistanceKM: math.Round(d*10) / 10}
			bestDist, bestRank = d, rank
			found = true
		}
	}
	return best, found
}
