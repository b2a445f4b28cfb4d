package types

// MetricCard is one of the headline numbers at the top of the dashboard.
type MetricCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Caption  string `json:"caption"`
	Positive bool   `json:"positive,omitempty"`
}

type WasteTypeShare struct {
	Name    string `json:"name"`
	Value   int    `json:"value"`
	Color   string `json:"color"`
	Percent int    `json:"percent"`
}

type MonthlyDetections struct {
	Month      string `json:"month"`
	Detections int    `json:"detections"`
}

type RegionWaste struct {
	Region string `json:"region"`
	Waste  int    `json:"waste"`
}

type RecentDetection struct {
	Ago      string   `json:"ago"`
	Location string   `json:"location"`
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
}

type DashboardSnapshot struct {
	Metrics           []MetricCard        `json:"metrics"`
	WasteTypes        []WasteTypeShare    `json:"wasteTypes"`
	MonthlyDetections []MonthlyDetections `json:"monthlyDetections"`
	Regions           []RegionWaste       `json:"regions"`
	RecentDetections  []RecentDetection   `json:"recentDetections"`
	WasteLocations    []WasteLocation     `json:"wasteLocations"`
}
