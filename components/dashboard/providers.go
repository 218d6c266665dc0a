package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/nisiafloresta/painel-bi/components/geo"
)

// TableProvider passes tabular configuration through, padding short rows so
// templates can index every column.
type TableProvider struct{}

// Fetch normalizes columns and rows.
func (TableProvider) Fetch(_ context.Context, meta PanelContext) (PanelData, error) {
	cfg := meta.Instance.Configuration
	columns := stringSliceValue(cfg["columns"])
	if len(columns) == 0 {
		return nil, fmt.Errorf("dashboard: table columns are required")
	}
	rows := tableRows(cfg["rows"], len(columns))
	return PanelData{
		"title":    stringValue(cfg["title"], ""),
		"subtitle": stringValue(cfg["subtitle"], ""),
		"source":   stringValue(cfg["source"], ""),
		"columns":  columns,
		"rows":     rows,
		"count":    len(rows),
	}, nil
}

func tableRows(v any, width int) [][]string {
	var raw [][]string
	switch val := v.(type) {
	case [][]string:
		raw = val
	case []any:
		for _, item := range val {
			raw = append(raw, stringSliceValue(item))
		}
	}
	rows := make([][]string, 0, len(raw))
	for _, row := range raw {
		out := make([]string, width)
		copy(out, row)
		rows = append(rows, out)
	}
	return rows
}

// MapMarker is a projected marker ready to be placed over the map image.
type MapMarker struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Color    string  `json:"color,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Verified bool    `json:"verified"`
}

// MapProvider projects geographic markers onto percentage offsets inside the
// bounding box of all markers and builds the embedded map URL for that box.
type MapProvider struct {
	zoom int
}

// NewMapProvider builds a map provider.
func NewMapProvider() *MapProvider {
	return &MapProvider{zoom: 13}
}

// Fetch projects the configured markers.
func (p *MapProvider) Fetch(_ context.Context, meta PanelContext) (PanelData, error) {
	cfg := meta.Instance.Configuration
	inputs := markerInputs(cfg["markers"])

	points := make([]geo.Point, len(inputs))
	for i, in := range inputs {
		points[i] = in.point
	}
	box, percents := geo.ProjectPercent(points)

	markers := make([]MapMarker, len(inputs))
	legend := map[string]int{}
	for i, in := range inputs {
		markers[i] = MapMarker{
			Name:     in.name,
			Category: in.category,
			Color:    in.color,
			X:        percents[i].X,
			Y:        percents[i].Y,
			Verified: in.verified,
		}
		if in.category != "" {
			legend[in.category]++
		}
	}

	center := box.Center()
	radius := math.Max(box.MaxLat-box.MinLat, box.MaxLng-box.MinLng) / 2
	return PanelData{
		"title":        stringValue(cfg["title"], ""),
		"markers":      markers,
		"legend":       legendEntries(legend),
		"bounds":       box,
		"embed_url":    geo.OSMEmbedURL(center, radius),
		"external_url": geo.GoogleEmbedURL(center, p.zoom),
	}, nil
}

type markerInput struct {
	name     string
	category string
	color    string
	point    geo.Point
	verified bool
}

func markerInputs(v any) []markerInput {
	var items []map[string]any
	switch val := v.(type) {
	case []map[string]any:
		items = val
	case []any:
		for _, item := range val {
			if m, ok := item.(map[string]any); ok {
				items = append(items, m)
			}
		}
	}
	out := make([]markerInput, 0, len(items))
	for _, item := range items {
		out = append(out, markerInput{
			name:     stringValue(item["name"], ""),
			category: stringValue(item["category"], ""),
			color:    stringValue(item["color"], ""),
			point:    geo.Point{Lat: float64Value(item["lat"]), Lng: float64Value(item["lng"])},
			verified: boolValue(item["verified"]),
		})
	}
	return out
}

// LegendEntry is one category of the map legend.
type LegendEntry struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

func legendEntries(counts map[string]int) []LegendEntry {
	out := make([]LegendEntry, 0, len(counts))
	for category, count := range counts {
		out = append(out, LegendEntry{Category: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
