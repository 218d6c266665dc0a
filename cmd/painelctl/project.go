package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nisiafloresta/painel-bi/components/geo"
)

type projectCmd struct {
	Points []string `arg:"" help:"Coordinates as lat,lng. Put -- before the first one, e.g. painelctl project -- -6.09,-35.21."`
	SVG    bool     `name:"svg" help:"Project onto the schematic SVG canvas instead of percentages."`
}

type projection struct {
	Box      *geo.Box      `json:"box,omitempty"`
	Percents []geo.Percent `json:"percents,omitempty"`
	Pixels   []geo.Pixel   `json:"pixels,omitempty"`
}

func (c *projectCmd) Run(_ context.Context) error {
	points, err := parsePoints(c.Points)
	if err != nil {
		return err
	}
	if c.SVG {
		placements := make([]geo.Placement, len(points))
		for i, p := range points {
			placements[i] = geo.Verified(p)
		}
		return writeJSON(projection{Pixels: geo.ProjectSVG(placements)})
	}
	box, percents := geo.ProjectPercent(points)
	return writeJSON(projection{Box: &box, Percents: percents})
}

func parsePoints(raw []string) ([]geo.Point, error) {
	points := make([]geo.Point, 0, len(raw))
	for _, item := range raw {
		lat, lng, ok := strings.Cut(item, ",")
		if !ok {
			return nil, fmt.Errorf("painelctl: point %q must be lat,lng", item)
		}
		la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
		if err != nil {
			return nil, fmt.Errorf("painelctl: latitude %q: %w", lat, err)
		}
		ln, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
		if err != nil {
			return nil, fmt.Errorf("painelctl: longitude %q: %w", lng, err)
		}
		points = append(points, geo.Point{Lat: la, Lng: ln})
	}
	return points, nil
}
