// Package geo places municipal facilities on the dashboard maps. It keeps a
// strict distinction between coordinates that came from a verified source and
// coordinates synthesised only to spread markers on a schematic drawing.
package geo

import "math"

// Point is a WGS84 latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

var (
	// TownCenter is the reference centre used by the coordinate-based map.
	TownCenter = Point{Lat: -6.082, Lng: -35.203}
	// SchematicCenter anchors the synthetic SVG map.
	SchematicCenter = Point{Lat: -6.093, Lng: -35.211}
)

// Kind tells whether a placement can be trusted as a real location.
type Kind int

const (
	KindVerified Kind = iota
	KindSynthetic
)

func (k Kind) String() string {
	switch k {
	case KindVerified:
		return "verified"
	case KindSynthetic:
		return "synthetic"
	default:
		return "unknown"
	}
}

// Placement is a point tagged with its provenance.
type Placement struct {
	Kind  Kind  `json:"kind"`
	Point Point `json:"point"`
}

// Verified wraps a point that came from a trusted source.
func Verified(p Point) Placement {
	return Placement{Kind: KindVerified, Point: p}
}

// Synthetic wraps a point produced only for display spacing.
func Synthetic(p Point) Placement {
	return Placement{Kind: KindSynthetic, Point: p}
}

// Verified returns the point only when it is a real location. Synthetic
// placements never leak into consumers that need geodata.
func (p Placement) Verified() (Point, bool) {
	if p.Kind != KindVerified {
		return Point{}, false
	}
	return p.Point, true
}

// DistanceKm returns the great-circle distance between two points.
func DistanceKm(a, b Point) float64 {
	const earthRadiusKm = 6371.0
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(a.Lat))*math.Cos(degreesToRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
