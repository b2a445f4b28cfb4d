package types

// Coordinates are stored longitude first, the order the map projection uses.
type Coordinates struct {
	Lng float64 `json:"lng" firestore:"lng"`
	Lat float64 `json:"lat" firestore:"lat"`
}

// Hotspot is a named ocean area with a pollution rating shown on the interactive map.
type Hotspot struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Coordinates     Coordinates `json:"coordinates"`
	Severity        Severity    `json:"severity"`
	WasteDetected   string      `json:"wasteDetected"`
	CleanupMissions int         `json:"cleanupMissions"`
	LocalPartners   []string    `json:"localPartners"`
	LastDetection   string      `json:"lastDetection"` // YYYY-MM-DD
}

// WasteLocation is a single detection rendered as a dashboard map marker.
type WasteLocation struct {
	ID        string   `json:"id"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	WasteType string   `json:"wasteType"`
	Severity  Severity `json:"severity"`
	Detected  string   `json:"detected"`
}
