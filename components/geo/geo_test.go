package geo

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacementVerifiedOnlyForVerifiedKind(t *testing.T) {
	p, ok := Verified(TownCenter).Verified()
	assert.True(t, ok)
	assert.Equal(t, TownCenter, p)

	_, ok = Synthetic(TownCenter).Verified()
	assert.False(t, ok)
}

func TestLocatorMatchesLandmarksCaseInsensitively(t *testing.T) {
	locator := NewAddressLocator(WithSeed(1))

	got := locator.Locate("Rua do HOSPITAL, s/n", 3)
	assert.Equal(t, KindVerified, got.Kind)
	assert.Equal(t, DefaultLandmarks[0].Point, got.Point)

	got = locator.Locate("Comunidade de Santa Luzia", 0)
	assert.Equal(t, KindVerified, got.Kind)
	assert.Equal(t, DefaultLandmarks[1].Point, got.Point)
}

func planarDistance(a, b Point) float64 {
	return math.Hypot(b.Lat-a.Lat, b.Lng-a.Lng)
}

func TestLocatorSpreadsCentroAddresses(t *testing.T) {
	locator := NewAddressLocator(WithSeed(7))
	first := locator.Locate("Rua São José, 300 - Centro", 0)
	second := locator.Locate("Rua Nova, s/n - Centro", 1)

	assert.Equal(t, KindSynthetic, first.Kind)
	assert.Equal(t, KindSynthetic, second.Kind)
	assert.NotEqual(t, first.Point, second.Point)
}

func TestLocatorSpreadsUnknownAddresses(t *testing.T) {
	locator := NewAddressLocator(WithRandom(func() float64 { return 0 }))

	first := locator.Locate("Sítio Desconhecido", 0)
	require.Equal(t, KindSynthetic, first.Kind)
	assert.InDelta(t, SchematicCenter.Lat+syntheticMinRadius, first.Point.Lat, 1e-9)
	assert.InDelta(t, SchematicCenter.Lng, first.Point.Lng, 1e-9)

	second := locator.Locate("", 1)
	require.Equal(t, KindSynthetic, second.Kind)
	assert.InDelta(t, syntheticMinRadius, planarDistance(SchematicCenter, second.Point), 1e-9)
	assert.NotEqual(t, first.Point, second.Point)
}

func TestLocatorSeedIsDeterministic(t *testing.T) {
	a := NewAddressLocator(WithSeed(42)).Locate("Povoado X", 5)
	b := NewAddressLocator(WithSeed(42)).Locate("Povoado X", 5)
	assert.Equal(t, a, b)
	d := planarDistance(SchematicCenter, a.Point)
	assert.GreaterOrEqual(t, d, syntheticMinRadius-1e-9)
	assert.LessOrEqual(t, d, syntheticMinRadius+syntheticJitter+1e-9)
}

func TestProjectPercentStaysInBoundsAndKeepsOrientation(t *testing.T) {
	points := []Point{
		{Lat: -6.05, Lng: -35.25},
		{Lat: -6.12, Lng: -35.15},
		{Lat: -6.08, Lng: -35.20},
	}
	box, out := ProjectPercent(points)
	require.Len(t, out, len(points))
	for _, pct := range out {
		assert.GreaterOrEqual(t, pct.X, 0.0)
		assert.LessOrEqual(t, pct.X, 100.0)
		assert.GreaterOrEqual(t, pct.Y, 0.0)
		assert.LessOrEqual(t, pct.Y, 100.0)
	}
	// further north means smaller y, further east means larger x
	assert.Less(t, out[0].Y, out[1].Y)
	assert.Less(t, out[0].X, out[1].X)
	assert.InDelta(t, -6.12-DefaultPadding, box.MinLat, 1e-9)
	assert.InDelta(t, -35.15+DefaultPadding, box.MaxLng, 1e-9)
}

func TestProjectPercentSinglePointIsCentred(t *testing.T) {
	_, out := ProjectPercent([]Point{{Lat: -6.1, Lng: -35.2}})
	require.Len(t, out, 1)
	assert.InDelta(t, 50, out[0].X, 1e-6)
	assert.InDelta(t, 50, out[0].Y, 1e-6)
}

func TestBoundsFallsBackWithoutPoints(t *testing.T) {
	box, out := ProjectPercent(nil)
	assert.Empty(t, out)
	assert.InDelta(t, TownCenter.Lat-FallbackRadius, box.MinLat, 1e-9)
	assert.InDelta(t, TownCenter.Lng+FallbackRadius, box.MaxLng, 1e-9)
}

func TestBoundsWidensDegenerateExtents(t *testing.T) {
	box := Bounds([]Point{{Lat: -6, Lng: -35}, {Lat: -6, Lng: -35}}, 0, TownCenter)
	assert.InDelta(t, minSpan, box.MaxLat-box.MinLat, 1e-12)
	assert.InDelta(t, minSpan, box.MaxLng-box.MinLng, 1e-12)
	pct := box.Percent(Point{Lat: -6, Lng: -35})
	assert.InDelta(t, 50, pct.X, 1e-6)
}

func TestPercentClampsOutsidePoints(t *testing.T) {
	box := Around(TownCenter, 0.01)
	pct := box.Percent(Point{Lat: 0, Lng: 0})
	assert.Equal(t, Percent{X: 100, Y: 0}, pct)
}

func TestProjectSVGUsesCanvas(t *testing.T) {
	pixels := ProjectSVG([]Placement{
		Verified(Point{Lat: -6.05, Lng: -35.25}),
		Synthetic(Point{Lat: -6.12, Lng: -35.15}),
	})
	require.Len(t, pixels, 2)
	for _, px := range pixels {
		assert.GreaterOrEqual(t, px.X, 0.0)
		assert.LessOrEqual(t, px.X, float64(SVGWidth))
		assert.GreaterOrEqual(t, px.Y, 0.0)
		assert.LessOrEqual(t, px.Y, float64(SVGHeight))
	}
	assert.Less(t, pixels[0].X, pixels[1].X)
}

func TestOSMEmbedURL(t *testing.T) {
	raw := OSMEmbedURL(TownCenter, 0.05)
	assert.True(t, strings.HasPrefix(raw, "https://www.openstreetmap.org/export/embed.html?"))
	assert.Contains(t, raw, "layer=mapnik")
	assert.Contains(t, raw, "marker=-6.082,-35.203")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	parts := strings.Split(parsed.Query().Get("bbox"), ",")
	require.Len(t, parts, 4)
	want := []float64{-35.253, -6.132, -35.153, -6.032}
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		require.NoError(t, err)
		assert.InDelta(t, want[i], v, 1e-9)
	}
}

func TestGoogleEmbedURL(t *testing.T) {
	raw := GoogleEmbedURL(TownCenter, 0)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "maps.google.com", parsed.Host)
	assert.Equal(t, "-6.082,-35.203", parsed.Query().Get("q"))
	assert.Equal(t, "13", parsed.Query().Get("z"))
	assert.Equal(t, "embed", parsed.Query().Get("output"))
}

func TestDistanceKm(t *testing.T) {
	assert.InDelta(t, 0, DistanceKm(TownCenter, TownCenter), 1e-9)
	// 0.01 degree of latitude is roughly 1.11 km
	assert.InDelta(t, 1.11, DistanceKm(TownCenter, Point{Lat: TownCenter.Lat + 0.01, Lng: TownCenter.Lng}), 0.01)
}
