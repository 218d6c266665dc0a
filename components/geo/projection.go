package geo

import "math"

const (
	// DefaultPadding is added around the extents of the plotted points.
	DefaultPadding = 0.01
	// FallbackRadius is used when there is nothing to plot.
	FallbackRadius = 0.05
	// minSpan keeps a single point (or a vertical/horizontal line of points)
	// from producing a zero-width box.
	minSpan = 0.001

	SVGWidth  = 800
	SVGHeight = 600
)

// Box is a latitude/longitude bounding box.
type Box struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Around returns the square box of the given radius centred on p.
func Around(p Point, radius float64) Box {
	return Box{
		MinLat: p.Lat - radius,
		MaxLat: p.Lat + radius,
		MinLng: p.Lng - radius,
		MaxLng: p.Lng + radius,
	}
}

// Bounds returns the padded extents of points. With no points it falls back
// to FallbackRadius around fallback.
func Bounds(points []Point, padding float64, fallback Point) Box {
	if len(points) == 0 {
		return Around(fallback, FallbackRadius)
	}
	box := Box{
		MinLat: points[0].Lat,
		MaxLat: points[0].Lat,
		MinLng: points[0].Lng,
		MaxLng: points[0].Lng,
	}
	for _, p := range points[1:] {
		box.MinLat = math.Min(box.MinLat, p.Lat)
		box.MaxLat = math.Max(box.MaxLat, p.Lat)
		box.MinLng = math.Min(box.MinLng, p.Lng)
		box.MaxLng = math.Max(box.MaxLng, p.Lng)
	}
	box.MinLat -= padding
	box.MaxLat += padding
	box.MinLng -= padding
	box.MaxLng += padding
	return box.widen(minSpan)
}

func (b Box) widen(span float64) Box {
	if d := span - (b.MaxLat - b.MinLat); d > 0 {
		b.MinLat -= d / 2
		b.MaxLat += d / 2
	}
	if d := span - (b.MaxLng - b.MinLng); d > 0 {
		b.MinLng -= d / 2
		b.MaxLng += d / 2
	}
	return b
}

// Center returns the middle of the box.
func (b Box) Center() Point {
	return Point{Lat: (b.MinLat + b.MaxLat) / 2, Lng: (b.MinLng + b.MaxLng) / 2}
}

// Percent is a position inside a box as percentages of its width and height,
// with y growing southwards so the map can be laid out top-down.
type Percent struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Percent projects p into the box. Values are clamped to [0,100].
func (b Box) Percent(p Point) Percent {
	x := (p.Lng - b.MinLng) / (b.MaxLng - b.MinLng) * 100
	y := (b.MaxLat - p.Lat) / (b.MaxLat - b.MinLat) * 100
	return Percent{X: clamp(x, 0, 100), Y: clamp(y, 0, 100)}
}

// ProjectPercent computes the padded box of points and the percentage
// position of each one, in input order.
func ProjectPercent(points []Point) (Box, []Percent) {
	box := Bounds(points, DefaultPadding, TownCenter)
	out := make([]Percent, len(points))
	for i, p := range points {
		out[i] = box.Percent(p)
	}
	return box, out
}

// Pixel is a position on the schematic SVG canvas.
type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ProjectSVG lays placements out on the SVGWidth x SVGHeight canvas. Both
// verified and synthetic placements take part in the extents.
func ProjectSVG(placements []Placement) []Pixel {
	points := make([]Point, len(placements))
	for i, p := range placements {
		points[i] = p.Point
	}
	box := Bounds(points, DefaultPadding, SchematicCenter)
	out := make([]Pixel, len(placements))
	for i, p := range points {
		pct := box.Percent(p)
		out[i] = Pixel{X: pct.X / 100 * SVGWidth, Y: pct.Y / 100 * SVGHeight}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
