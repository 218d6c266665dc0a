package transparency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForKnownTags(t *testing.T) {
	cases := map[string]struct {
		label string
		icon  string
		bg    string
	}{
		Real:       {"REAL", "✓", "bg-green-100"},
		IBGE:       {"IBGE", "📊", "bg-orange-100"},
		Estimativa: {"ESTIMATIVA", "📊", "bg-orange-100"},
		Simulado:   {"SIMULADO", "🔄", "bg-yellow-100"},
	}
	for tag, want := range cases {
		badge := For(tag, "")
		assert.Equal(t, want.label, badge.Label, tag)
		assert.Equal(t, want.icon, badge.Icon, tag)
		assert.Equal(t, want.bg, badge.Background, tag)
		assert.True(t, Known(tag))
	}
}

func TestForUnknownTagUsesNeutralStyle(t *testing.T) {
	badge := For("xyz", "")
	assert.Equal(t, "DESCONHECIDO", badge.Label)
	assert.Equal(t, "?", badge.Icon)
	assert.Equal(t, "bg-gray-100 text-gray-800 border-gray-300", badge.Classes())
	assert.False(t, Known("xyz"))
}

func TestForNormalizesCase(t *testing.T) {
	assert.Equal(t, "REAL", For("  Real ", "").Label)
}

func TestCaptionIncludesSource(t *testing.T) {
	assert.Equal(t, "✓ REAL (INEP)", For(Real, "INEP").Caption())
	assert.Equal(t, "🔄 SIMULADO", For(Simulado, " ").Caption())
}
