package types

// AnalysisResult is the outcome of classifying one uploaded image.
type AnalysisResult struct {
	WasteType      string         `json:"wasteType"`
	Confidence     float64        `json:"confidence"` // 0..1
	Severity       Severity       `json:"severity"`
	Location       string         `json:"location,omitempty"`
	Coordinates    *Coordinates   `json:"coordinates,omitempty"`
	NearestHotspot *NearbyHotspot `json:"nearestHotspot,omitempty"`
}

// ConfidencePercent rounds the confidence to a whole percentage.
func (r AnalysisResult) ConfidencePercent() int {
	return int(r.Confidence*100 + 0.5)
}

type NearbyHotspot struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DistanceKM float64 `json:"distanceKm"`
}
