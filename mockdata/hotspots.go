package mockdata

import "go-wavecleanup/types"

var hotspots = []types.Hotspot{
	{
		ID:              "1",
		Name:            "Great Pacific Garbage Patch",
		Coordinates:     types.Coordinates{Lng: -140, Lat: 35},
		Severity:        types.High,
		WasteDetected:   "80,000 tons",
		CleanupMissions: 12,
		LocalPartners:   []string{"Ocean Cleanup", "Greenpeace", "Surfrider Foundation"},
		LastDetection:   "2024-01-15",
	},
	{
		ID:              "2",
		Name:            "Mediterranean Sea",
		Coordinates:     types.Coordinates{Lng: 15, Lat: 40},
		Severity:        types.Medium,
		WasteDetected:   "12,500 tons",
		CleanupMissions: 8,
		LocalPartners:   []string{"Mediterranean SOS", "WWF"},
		LastDetection:   "2024-01-10",
	},
	{
		ID:              "3",
		Name:            "Caribbean Basin",
		Coordinates:     types.Coordinates{Lng: -70, Lat: 18},
		Severity:        types.High,
		WasteDetected:   "25,000 tons",
		CleanupMissions: 15,
		LocalPartners:   []string{"Caribbean Environment Programme", "Ocean Conservancy"},
		LastDetection:   "2024-01-12",
	},
	{
		ID:              "4",
		Name:            "Bay of Bengal",
		Coordinates:     types.Coordinates{Lng: 90, Lat: 20},
		Severity:        types.Medium,
		WasteDetected:   "18,700 tons",
		CleanupMissions: 6,
		LocalPartners:   []string{"Blue Economy Bangladesh", "Marine Life Alliance"},
		LastDetection:   "2024-01-08",
	},
	{
		ID:              "5",
		Name:            "North Sea",
		Coordinates:     types.Coordinates{Lng: 4, Lat: 56},
		Severity:        types.Low,
		WasteDetected:   "5,200 tons",
		CleanupMissions: 4,
		LocalPartners:   []string{"North Sea Foundation", "Marine Conservation Society"},
		LastDetection:   "2024-01-14",
	},
}

var wasteLocations = []types.WasteLocation{
	{ID: "1", Lat: 25.7617, Lng: -80.1918, WasteType: "Plastic bottles", Severity: types.High, Detected: "2024-01-15"},
	{ID: "2", Lat: 34.0522, Lng: -118.2437, WasteType: "Fishing nets", Severity: types.Medium, Detected: "2024-01-14"},
	{ID: "3", Lat: 40.7128, Lng: -74.0060, WasteType: "Food containers", Severity: types.Low, Detected: "2024-01-13"},
	{ID: "4", Lat: 51.5074, Lng: -0.1278, WasteType: "Chemical waste", Severity: types.High, Detected: "2024-01-12"},
	{ID: "5", Lat: 35.6762, Lng: 139.6503, WasteType: "Microplastics", Severity: types.Medium, Detected: "2024-01-11"},
}

// Hotspots returns a copy of the fixed hotspot list.
func Hotspots() []types.Hotspot {
	out := make([]types.Hotspot, len(hotspots))
	for i, h := range hotspots {
		h.LocalPartners = append([]string(nil), h.LocalPartners...)
		out[i] = h
	}
	return out
}

// HotspotByID does a linear lookup over the fixed list.
func HotspotByID(id string) (types.Hotspot, bool) {
	for _, h := range Hotspots() {
		if h.ID == id {
			return h, true
		}
	}
	return types.Hotspot{}, false
}

func WasteLocations() []types.WasteLocation {
	return append([]types.WasteLocation(nil), wasteLocations...)
}
