// Package dataset holds the static municipal figures rendered by the
// dashboard. Every list is built once at start-up and handed out as a copy;
// there is no write path.
package dataset

import "strings"

// Zone classifies where a facility is located.
type Zone string

const (
	ZoneUrbana Zone = "urbana"
	ZoneRural  Zone = "rural"
)

// Label returns the capitalised zone name used in tables and charts.
func (z Zone) Label() string {
	switch z {
	case ZoneUrbana:
		return "Urbana"
	case ZoneRural:
		return "Rural"
	default:
		return string(z)
	}
}

// FacilityType is the kind of health establishment.
type FacilityType string

const (
	FacilityHospital      FacilityType = "Hospital"
	FacilityUBS           FacilityType = "UBS"
	FacilityCAPS          FacilityType = "CAPS"
	FacilityCEO           FacilityType = "CEO"
	FacilityPosto         FacilityType = "Posto de Saúde"
	FacilityEspecializada FacilityType = "Especializada"
	FacilityGestao        FacilityType = "Gestão"
)

// Category buckets used by the map legend and the distribution chart.
const (
	CategoryUBS            = "ubs"
	CategoryPostos         = "postos"
	CategoryCAPS           = "caps"
	CategoryGestao         = "gestao"
	CategoryEspecializadas = "especializadas"
)

// Category folds a facility type into one of the legend buckets by name.
func (t FacilityType) Category() string {
	name := strings.ToLower(string(t))
	switch {
	case strings.Contains(name, "ubs"):
		return CategoryUBS
	case strings.Contains(name, "posto"):
		return CategoryPostos
	case strings.Contains(name, "caps"):
		return CategoryCAPS
	case strings.Contains(name, "gest"):
		return CategoryGestao
	default:
		return CategoryEspecializadas
	}
}

// MarkerColor is the map marker colour for the facility type.
func (t FacilityType) MarkerColor() string {
	switch t {
	case FacilityHospital:
		return "#dc2626"
	case FacilityUBS:
		return "#2563eb"
	case FacilityCAPS:
		return "#7c3aed"
	case FacilityCEO:
		return "#059669"
	default:
		return "#f59e0b"
	}
}

// HealthUnit is a municipal health establishment.
type HealthUnit struct {
	Name    string       `json:"nome"`
	Type    FacilityType `json:"tipo"`
	Address string       `json:"endereco"`
	Zone    Zone         `json:"zona"`
	Phone   string       `json:"telefone,omitempty"`
	Email   string       `json:"email,omitempty"`
	Lat     *float64     `json:"lat,omitempty"`
	Lng     *float64     `json:"lng,omitempty"`
}

// Coordinates reports the surveyed position, when there is one.
func (u HealthUnit) Coordinates() (lat, lng float64, ok bool) {
	if u.Lat == nil || u.Lng == nil {
		return 0, 0, false
	}
	return *u.Lat, *u.Lng, true
}

// SchoolType is the teaching stage offered by a school.
type SchoolType string

const (
	SchoolFundamental SchoolType = "Ensino Fundamental"
	SchoolInfantil    SchoolType = "Educação Infantil"
	SchoolEJA         SchoolType = "Educação de Jovens e Adultos"
)

// MarkerColor is the map marker colour for the school type.
func (t SchoolType) MarkerColor() string {
	switch t {
	case SchoolFundamental:
		return "#2563eb"
	case SchoolInfantil:
		return "#dc2626"
	case SchoolEJA:
		return "#059669"
	default:
		return "#f59e0b"
	}
}

// School is a public school of the municipal network.
type School struct {
	Name       string     `json:"nome"`
	INEP       string     `json:"inep"`
	Type       SchoolType `json:"tipo"`
	Address    string     `json:"endereco"`
	Zone       Zone       `json:"zona"`
	Modalities []string   `json:"modalidades,omitempty"`
	IDEB       *float64   `json:"ideb,omitempty"`
}

// Indicator is a single figure with its provenance.
type Indicator struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Format     Format  `json:"format"`
	Display    string  `json:"display,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Reference  string  `json:"reference,omitempty"`
	Provenance string  `json:"provenance"`
	Source     string  `json:"source,omitempty"`
}

// Format tells renderers how to print an indicator value.
type Format string

const (
	FormatInteger  Format = "integer"
	FormatDecimal  Format = "decimal"
	FormatCurrency Format = "currency"
	FormatPercent  Format = "percent"
)

// Period is a labelled count, e.g. one month of attendances.
type Period struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// MonthlyAttendance is the breakdown of attendances for one month.
type MonthlyAttendance struct {
	Month  string         `json:"mes"`
	Total  int            `json:"total"`
	ByType map[string]int `json:"por_tipo"`
}

func ptr(v float64) *float64 { return &v }
