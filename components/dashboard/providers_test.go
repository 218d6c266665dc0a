package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableProviderPadsRows(t *testing.T) {
	data, err := TableProvider{}.Fetch(context.Background(), PanelContext{Instance: PanelInstance{
		Configuration: map[string]any{
			"title":   "Unidades",
			"source":  "CNES",
			"columns": []any{"Nome", "Tipo", "Zona"},
			"rows":    []any{[]any{"UBS Pium", "UBS"}, []any{"CAPS", "CAPS", "Urbana"}},
		},
	}})
	require.NoError(t, err)
	rows := data["rows"].([][]string)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"UBS Pium", "UBS", ""}, rows[0])
	assert.Equal(t, 2, data["count"])
	assert.Equal(t, "CNES", data["source"])
	assert.Equal(t, "", data["subtitle"])
}

func TestTableProviderRequiresColumns(t *testing.T) {
	_, err := TableProvider{}.Fetch(context.Background(), PanelContext{Instance: PanelInstance{
		Configuration: map[string]any{"rows": [][]string{{"a"}}},
	}})
	assert.Error(t, err)
}

func TestMapProviderProjectsMarkers(t *testing.T) {
	data, err := NewMapProvider().Fetch(context.Background(), PanelContext{Instance: PanelInstance{
		Configuration: unitMap("Mapa"),
	}})
	require.NoError(t, err)

	markers := data["markers"].([]MapMarker)
	require.NotEmpty(t, markers)
	for _, m := range markers {
		assert.GreaterOrEqual(t, m.X, 0.0, m.Name)
		assert.LessOrEqual(t, m.X, 100.0, m.Name)
		assert.GreaterOrEqual(t, m.Y, 0.0, m.Name)
		assert.LessOrEqual(t, m.Y, 100.0, m.Name)
	}

	legend := data["legend"].([]LegendEntry)
	total := 0
	for i, entry := range legend {
		total += entry.Count
		if i > 0 {
			assert.Less(t, legend[i-1].Category, entry.Category)
		}
	}
	assert.Equal(t, len(markers), total)

	assert.True(t, strings.HasPrefix(data["embed_url"].(string), "https://www.openstreetmap.org/export/embed.html?bbox="))
	assert.True(t, strings.HasPrefix(data["external_url"].(string), "https://maps.google.com/maps?"))
	assert.Equal(t, "Mapa", data["title"])
}

func TestMapProviderAcceptsDecodedMarkers(t *testing.T) {
	data, err := NewMapProvider().Fetch(context.Background(), PanelContext{Instance: PanelInstance{
		Configuration: map[string]any{
			"markers": []any{
				map[string]any{"name": "A", "lat": -6.0, "lng": -35.2, "verified": true},
				map[string]any{"name": "B", "lat": -6.1, "lng": -35.1},
			},
		},
	}})
	require.NoError(t, err)
	markers := data["markers"].([]MapMarker)
	require.Len(t, markers, 2)
	assert.True(t, markers[0].Verified)
	assert.False(t, markers[1].Verified)
	assert.Empty(t, data["legend"])
}
