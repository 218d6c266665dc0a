package geo

import (
	"math"
	"math/rand/v2"
	"strings"
)

const (
	goldenAngleDegrees = 137.5
	syntheticMinRadius = 0.02
	syntheticJitter    = 0.03
)

// Landmark maps an address fragment to a known location.
type Landmark struct {
	Match string
	Point Point
}

// DefaultLandmarks lists the address fragments with surveyed coordinates.
// Matching is case-insensitive and the first match wins. Neighbourhood names
// shared by many addresses, such as Centro, are left out so their markers are
// spread instead of stacked on one point.
var DefaultLandmarks = []Landmark{
	{Match: "hospital", Point: Point{Lat: -6.0912, Lng: -35.2089}},
	{Match: "santa luzia", Point: Point{Lat: -6.0985, Lng: -35.2141}},
	{Match: "lagoinha", Point: Point{Lat: -6.0683, Lng: -35.1876}},
}

// AddressLocator resolves addresses through the landmark table and falls back
// to golden-angle spacing around the centre for anything it cannot match.
type AddressLocator struct {
	center    Point
	landmarks []Landmark
	random    func() float64
}

// LocatorOption customises an AddressLocator.
type LocatorOption func(*AddressLocator)

// WithCenter changes the point synthetic placements orbit around.
func WithCenter(center Point) LocatorOption {
	return func(l *AddressLocator) {
		l.center = center
	}
}

// WithLandmarks replaces the landmark table.
func WithLandmarks(landmarks []Landmark) LocatorOption {
	return func(l *AddressLocator) {
		l.landmarks = append([]Landmark(nil), landmarks...)
	}
}

// WithRandom injects the [0,1) source used to jitter synthetic radii.
func WithRandom(random func() float64) LocatorOption {
	return func(l *AddressLocator) {
		if random != nil {
			l.random = random
		}
	}
}

// WithSeed makes synthetic placement reproducible.
func WithSeed(seed uint64) LocatorOption {
	return func(l *AddressLocator) {
		l.random = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)).Float64
	}
}

// NewAddressLocator builds a locator around SchematicCenter with DefaultLandmarks.
func NewAddressLocator(opts ...LocatorOption) *AddressLocator {
	l := &AddressLocator{
		center:    SchematicCenter,
		landmarks: DefaultLandmarks,
		random:    rand.Float64,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate places the entity at position index of its list.
func (l *AddressLocator) Locate(address string, index int) Placement {
	if p, ok := l.lookup(address); ok {
		return Verified(p)
	}
	return Synthetic(l.spread(index))
}

func (l *AddressLocator) lookup(address string) (Point, bool) {
	normalized := strings.ToLower(address)
	if strings.TrimSpace(normalized) == "" {
		return Point{}, false
	}
	for _, lm := range l.landmarks {
		if lm.Match != "" && strings.Contains(normalized, strings.ToLower(lm.Match)) {
			return lm.Point, true
		}
	}
	return Point{}, false
}

func (l *AddressLocator) spread(index int) Point {
	angle := math.Mod(float64(index)*goldenAngleDegrees, 360) * math.Pi / 180
	distance := syntheticMinRadius + l.random()*syntheticJitter
	return Point{
		Lat: l.center.Lat + distance*math.Cos(angle),
		Lng: l.center.Lng + distance*math.Sin(angle),
	}
}
