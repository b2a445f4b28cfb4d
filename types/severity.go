package types

import (
	"fmt"
	"strings"
)

type Severity string

const (
	Low    Severity = "low"
	Medium Severity = "medium"
	High   Severity = "high"
)

// Severities lists every level from least to most severe.
var Severities = []Severity{Low, Medium, High}

// Rank orders severities; unknown values rank below Low.
func (s Severity) Rank() int {
	switch s {
	case Low:
		return 1
	case Medium:
		return 2
	case High:
		return 3
	default:
		return 0
	}
}

func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// MarkerColor is the fill colour used for map markers.
func (s Severity) MarkerColor() string {
	switch s {
	case High:
		return "#ef4444"
	case Medium:
		return "#f59e0b"
	case Low:
		return "#22c55e"
	default:
		return "#6b7280"
	}
}

// BadgeClass is the css modifier used for severity badges.
func (s Severity) BadgeClass() string {
	if !s.Valid() {
		return "badge-unknown"
	}
	return "badge-" + string(s)
}

// RiskLabel renders "HIGH RISK", "MEDIUM RISK", ...
func (s Severity) RiskLabel() string {
	return strings.ToUpper(string(s)) + " RISK"
}

func ParseSeverity(v string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown severity %q", v)
	}
	return s, nil
}
