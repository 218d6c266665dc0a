package geo

import (
	"fmt"
	"net/url"
	"strconv"
)

// OSMEmbedURL builds the OpenStreetMap iframe URL for a box around marker.
func OSMEmbedURL(marker Point, radius float64) string {
	if radius <= 0 {
		radius = FallbackRadius
	}
	box := Around(marker, radius)
	return fmt.Sprintf("https://www.openstreetmap.org/export/embed.html?bbox=%s,%s,%s,%s&layer=mapnik&marker=%s,%s",
		coord(box.MinLng), coord(box.MinLat), coord(box.MaxLng), coord(box.MaxLat),
		coord(marker.Lat), coord(marker.Lng))
}

// GoogleEmbedURL builds a keyless Google Maps iframe URL centred on p.
func GoogleEmbedURL(p Point, zoom int) string {
	if zoom <= 0 {
		zoom = 13
	}
	q := url.Values{}
	q.Set("q", coord(p.Lat)+","+coord(p.Lng))
	q.Set("z", strconv.Itoa(zoom))
	q.Set("output", "embed")
	return "https://maps.google.com/maps?" + q.Encode()
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
