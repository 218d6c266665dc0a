// Package transparency maps provenance tags attached to indicators into the
// badge styles shown next to every figure on the dashboard.
package transparency

import "strings"

// Provenance tags recognised by the dashboard.
const (
	Real       = "real"
	IBGE       = "ibge"
	Estimativa = "estimativa"
	Simulado   = "simulado"
)

// Badge is the visual description of a provenance tag.
type Badge struct {
	Tag        string `json:"tag"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
	Icon       string `json:"icon"`
	Label      string `json:"label"`
	Source     string `json:"source,omitempty"`
}

type style struct {
	background string
	text       string
	border     string
	icon       string
	label      string
}

var styles = map[string]style{
	Real:       {"bg-green-100", "text-green-800", "border-green-300", "✓", "REAL"},
	IBGE:       {"bg-orange-100", "text-orange-800", "border-orange-300", "📊", "IBGE"},
	Estimativa: {"bg-orange-100", "text-orange-800", "border-orange-300", "📊", "ESTIMATIVA"},
	Simulado:   {"bg-yellow-100", "text-yellow-800", "border-yellow-300", "🔄", "SIMULADO"},
}

var unknownStyle = style{"bg-gray-100", "text-gray-800", "border-gray-300", "?", "DESCONHECIDO"}

// For resolves the badge for tag. Unrecognised tags render with the neutral
// DESCONHECIDO style instead of failing.
func For(tag, source string) Badge {
	key := strings.ToLower(strings.TrimSpace(tag))
	st, ok := styles[key]
	if !ok {
		st = unknownStyle
	}
	return Badge{
		Tag:        key,
		Background: st.background,
		Text:       st.text,
		Border:     st.border,
		Icon:       st.icon,
		Label:      st.label,
		Source:     strings.TrimSpace(source),
	}
}

// Known reports whether tag has a dedicated style.
func Known(tag string) bool {
	_, ok := styles[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}

// Classes joins the CSS classes of the badge.
func (b Badge) Classes() string {
	return b.Background + " " + b.Text + " " + b.Border
}

// Caption renders the badge text, with the source in parentheses when present.
func (b Badge) Caption() string {
	caption := b.Icon + " " + b.Label
	if b.Source != "" {
		caption += " (" + b.Source + ")"
	}
	return caption
}
