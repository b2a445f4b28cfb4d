// Package hotspots models the interactive pollution map: markers placed on an
// equirectangular projection and a detail panel for the selected hotspot.
package hotspots

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go-wavecleanup/types"
)

var ErrUnknownHotspot = errors.New("unknown hotspot")

// Marker is a hotspot positioned as percentages of the map's width and height.
type Marker struct {
	ID          string
	Name        string
	Severity    types.Severity
	Color       string
	LeftPercent float64
	TopPercent  float64
}

// Panel is what the detail dialog shows for the selected hotspot.
type Panel struct {
	ID              string
	Name            string
	Severity        types.Severity
	RiskLabel       string
	WasteDetected   string
	CleanupMissions int
	LocalPartners   []string
	LastDetection   string
}

type Event int

const (
	CloseButton Event = iota
	Backdrop
	PanelBody
)

type Map struct {
	mu       sync.RWMutex
	hotspots []types.Hotspot
	selected *types.Hotspot
}

func NewMap(hotspots []types.Hotspot) *Map {
	return &Map{hotspots: hotspots}
}

// Project maps a longitude/latitude pair to left/top percentages.
func Project(c types.Coordinates) (left, top float64) {
	left = (c.Lng + 180) / 360 * 100
	top = (90 - c.Lat) / 180 * 100
	return left, top
}

func (m *Map) Markers() []Marker {
	m.mu.RLock()
	defer m.mu.RUnlock()

	markers := make([]Marker, 0, len(m.hotspots))
	for _, h := range m.hotspots {
		left, top := Project(h.Coordinates)
		markers = append(markers, Marker{
			ID:          h.ID,
			Name:        h.Name,
			Severity:    h.Severity,
			Color:       h.Severity.MarkerColor(),
			LeftPercent: left,
			TopPercent:  top,
		})
	}
	return markers
}

// Select opens the panel for id. An unknown id leaves the current selection as is.
func (m *Map) Select(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.hotspots {
		if m.hotspots[i].ID == id {
			h := m.hotspots[i]
			m.selected = &h
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownHotspot, id)
}

// Handle processes a click on the open panel. Clicks inside the panel body do not close it.
func (m *Map) Handle(ev Event) {
	switch ev {
	case CloseButton, Backdrop:
		m.Close()
	}
}

func (m *Map) Close() {
	m.mu.Lock()
	m.selected = nil
	m.mu.Unlock()
}

func (m *Map) Selected() (types.Hotspot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.selected == nil {
		return types.Hotspot{}, false
	}
	return *m.selected, true
}

// Panel returns the open detail panel, or nil when nothing is selected.
func (m *Map) Panel() *Panel {
	h, ok := m.Selected()
	if !ok {
		return nil
	}
	return &Panel{
		ID:              h.ID,
		Name:            h.Name,
		Severity:        h.Severity,
		RiskLabel:       h.Severity.RiskLabel(),
		WasteDetected:   h.WasteDetected,
		CleanupMissions: h.CleanupMissions,
		LocalPartners:   append([]string(nil), h.LocalPartners...),
		LastDetection:   formatDate(h.LastDetection),
	}
}

func formatDate(day string) string {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return day
	}
	return t.Format("1/2/2006")
}
