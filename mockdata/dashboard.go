package mockdata

import (
	"fmt"
	"time"

	"go-wavecleanup/types"
)

var metricCards = []types.MetricCard{
	{Title: "Total Waste Detected", Value: "847,329", Caption: "+12.5% from last month", Positive: true},
	{Title: "Critical Areas", Value: "23", Caption: "Requiring immediate action"},
	{Title: "Active Drones", Value: "156", Caption: "Monitoring ocean areas"},
	{Title: "Cleanup Efficiency", Value: "78%", Caption: "+5% improvement", Positive: true},
}

var wasteTypeData = []types.WasteTypeShare{
	{Name: "Plastic", Value: 45, Color: "#ef4444"},
	{Name: "Glass", Value: 23, Color: "#3b82f6"},
	{Name: "Metal", Value: 18, Color: "#f59e0b"},
	{Name: "Organic", Value: 14, Color: "#22c55e"},
}

var monthlyDetections = []types.MonthlyDetections{
	{Month: "Jan", Detections: 1240},
	{Month: "Feb", Detections: 1680},
	{Month: "Mar", Detections: 2100},
	{Month: "Apr", Detections: 1890},
	{Month: "May", Detections: 2340},
	{Month: "Jun", Detections: 2800},
}

var regionData = []types.RegionWaste{
	{Region: "Pacific", Waste: 4200},
	{Region: "Atlantic", Waste: 3100},
	{Region: "Indian", Waste: 2800},
	{Region: "Arctic", Waste: 890},
	{Region: "Antarctic", Waste: 650},
}

type recentAlert struct {
	age      time.Duration
	location string
	kind     string
	severity types.Severity
}

var recentAlerts = []recentAlert{
	{2 * time.Minute, "Pacific Ocean (25.7617°N, 80.1918°W)", "Plastic bottles", types.High},
	{8 * time.Minute, "Atlantic Ocean (34.0522°N, 118.2437°W)", "Fishing nets", types.Medium},
	{15 * time.Minute, "Indian Ocean (40.7128°N, 74.0060°W)", "Food containers", types.Low},
}

// Dashboard assembles the dashboard snapshot as seen at now.
func Dashboard(now time.Time) types.DashboardSnapshot {
	shares := append([]types.WasteTypeShare(nil), wasteTypeData...)
	total := 0
	for _, s := range shares {
		total += s.Value
	}
	for i := range shares {
		if total > 0 {
			shares[i].Percent = (shares[i].Value*100 + total/2) / total
		}
	}

	recent := make([]types.RecentDetection, 0, len(recentAlerts))
	for _, a := range recentAlerts {
		detectedAt := now.Add(-a.age)
		recent = append(recent, types.RecentDetection{
			Ago:      Ago(now, detectedAt),
			Location: a.location,
			Type:     a.kind,
			Severity: a.severity,
		})
	}

	return types.DashboardSnapshot{
		Metrics:           append([]types.MetricCard(nil), metricCards...),
		WasteTypes:        shares,
		MonthlyDetections: append([]types.MonthlyDetections(nil), monthlyDetections...),
		Regions:           append([]types.RegionWaste(nil), regionData...),
		RecentDetections:  recent,
		WasteLocations:    WasteLocations(),
	}
}

// Ago renders the coarse relative time used in the detection feed.
func Ago(now, then time.Time) string {
	d := now.Sub(then)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d h ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%d d ago", int(d/(24*time.Hour)))
	}
}
