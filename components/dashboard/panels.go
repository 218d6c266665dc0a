package dashboard

import (
	"fmt"
	"strings"

	"github.com/nisiafloresta/painel-bi/components/dataset"
	"github.com/nisiafloresta/painel-bi/components/geo"
	"github.com/nisiafloresta/painel-bi/components/transparency"
)

// locatorSeed keeps synthetic map positions stable across renders.
const locatorSeed = 2025

var categoryLabels = map[string]string{
	dataset.CategoryUBS:            "UBS",
	dataset.CategoryPostos:         "Postos de Saúde",
	dataset.CategoryCAPS:           "CAPS",
	dataset.CategoryGestao:         "Gestão",
	dataset.CategoryEspecializadas: "Especializadas",
}

var categoryOrder = []string{
	dataset.CategoryUBS,
	dataset.CategoryPostos,
	dataset.CategoryCAPS,
	dataset.CategoryGestao,
	dataset.CategoryEspecializadas,
}

var categoryColors = map[string]string{
	dataset.CategoryUBS:            "#2563eb",
	dataset.CategoryPostos:         "#f59e0b",
	dataset.CategoryCAPS:           "#7c3aed",
	dataset.CategoryGestao:         "#64748b",
	dataset.CategoryEspecializadas: "#059669",
}

// sectionPlan lists what a tab shows before providers run.
type sectionPlan struct {
	cards  []Card
	panels []PanelInstance
}

func panel(section, id, code string, cfg map[string]any) PanelInstance {
	return PanelInstance{
		ID:            section + "." + id,
		DefinitionID:  code,
		Section:       section,
		Configuration: cfg,
	}
}

func planSection(id string, f *Formatter) (sectionPlan, bool) {
	switch id {
	case "unidades":
		return planUnits(f), true
	case "demografia":
		return planDemography(f), true
	case "saude":
		return planHealth(f), true
	case "socioeconomico":
		return planSocioeconomic(f), true
	case "educacao":
		return planEducation(f), true
	case "seguranca":
		return planSecurity(f), true
	default:
		return sectionPlan{}, false
	}
}

func planUnits(f *Formatter) sectionPlan {
	const id = "unidades"
	return sectionPlan{
		cards: f.Cards(dataset.UnitIndicators()),
		panels: []PanelInstance{
			panel(id, "distribuicao", PanelPieChart, unitDistributionChart()),
			panel(id, "atendimentos", PanelBarChart, attendanceByTypeChart()),
			panel(id, "mapa", PanelMap, unitMap("Mapa das Unidades de Saúde")),
			panel(id, "lista", PanelTable, unitTable(f)),
		},
	}
}

func planDemography(f *Formatter) sectionPlan {
	const id = "demografia"
	return sectionPlan{
		cards: f.Cards(dataset.DemographyIndicators()),
		panels: []PanelInstance{
			panel(id, "populacao", PanelLineChart, periodChart("Evolução Populacional", "População", dataset.Population())),
		},
	}
}

func planHealth(f *Formatter) sectionPlan {
	const id = "saude"
	july, _ := dataset.AttendanceFor("julho")
	return sectionPlan{
		cards: f.Cards(dataset.HealthIndicators()),
		panels: []PanelInstance{
			panel(id, "tendencia", PanelAreaChart, periodChart("Tendência Mensal de Atendimentos", "Atendimentos", dataset.MonthlyAttendanceTrend())),
			panel(id, "tipos", PanelBarChart, periodChart("Atendimentos por Tipo - Julho 2025", "Atendimentos", july.Breakdown())),
		},
	}
}

func planSocioeconomic(f *Formatter) sectionPlan {
	const id = "socioeconomico"
	budget := []dataset.Period{}
	for _, ind := range dataset.SocioeconomicIndicators() {
		if ind.Key == "receitas" || ind.Key == "despesas" {
			budget = append(budget, dataset.Period{Label: ind.Label, Value: ind.Value})
		}
	}
	cfg := periodChart("Receitas x Despesas", "R$", budget)
	cfg["subtitle"] = "2024 (estimativa)"
	cfg["colors"] = []string{"#059669"}
	cfg["unit"] = UnitCurrency
	return sectionPlan{
		cards:  f.Cards(dataset.SocioeconomicIndicators()),
		panels: []PanelInstance{panel(id, "orcamento", PanelBarChart, cfg)},
	}
}

func planEducation(f *Formatter) sectionPlan {
	const id = "educacao"
	schools := dataset.Schools()
	byZone := dataset.CountSchoolsByZone(schools)
	byType := dataset.CountSchoolsByType(schools)
	zones := []dataset.Period{
		{Label: dataset.ZoneUrbana.Label(), Value: float64(byZone[dataset.ZoneUrbana])},
		{Label: dataset.ZoneRural.Label(), Value: float64(byZone[dataset.ZoneRural])},
	}
	types := []dataset.Period{}
	for _, t := range []dataset.SchoolType{dataset.SchoolFundamental, dataset.SchoolInfantil, dataset.SchoolEJA} {
		types = append(types, dataset.Period{Label: string(t), Value: float64(byType[t])})
	}
	return sectionPlan{
		cards: f.Cards(dataset.EducationIndicators()),
		panels: []PanelInstance{
			panel(id, "zonas", PanelPieChart, periodChart("Escolas por Zona", "Escolas", zones)),
			panel(id, "etapas", PanelBarChart, periodChart("Escolas por Etapa", "Escolas", types)),
			panel(id, "mapa", PanelMap, schoolMap()),
			panel(id, "lista", PanelTable, schoolTable(f)),
		},
	}
}

func planSecurity(f *Formatter) sectionPlan {
	const id = "seguranca"
	return sectionPlan{
		cards: f.Cards(dataset.SecurityIndicators()),
		panels: []PanelInstance{
			panel(id, "ocorrencias", PanelPieChart, periodChart("Ocorrências por Tipo (%)", "Ocorrências", dataset.OccurrencesByType())),
			panel(id, "mensal", PanelLineChart, periodChart("Ocorrências Mensais 2025", "Ocorrências", dataset.MonthlyOccurrences2025())),
		},
	}
}

func periodChart(title, series string, values []dataset.Period) map[string]any {
	axis := make([]string, len(values))
	data := make([]map[string]any, len(values))
	for i, v := range values {
		axis[i] = v.Label
		data[i] = map[string]any{"name": v.Label, "value": v.Value}
	}
	return map[string]any{
		"title":  title,
		"x_axis": axis,
		"series": []map[string]any{{"name": series, "data": data}},
	}
}

func unitDistributionChart() map[string]any {
	counts := dataset.CountUnitsByCategory(dataset.HealthUnits())
	data := make([]map[string]any, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		if counts[category] == 0 {
			continue
		}
		data = append(data, map[string]any{
			"name":  categoryLabels[category],
			"value": counts[category],
			"color": categoryColors[category],
		})
	}
	return map[string]any{
		"title":  "Distribuição por Tipo",
		"series": []map[string]any{{"name": "Unidades", "data": data}},
	}
}

func attendanceByTypeChart() map[string]any {
	months := dataset.Attendance2025()
	axis := make([]string, len(months))
	for i, m := range months {
		axis[i] = monthAbbrev(m.Month)
	}
	series := make([]map[string]any, 0, len(dataset.AttendanceTypes))
	for _, kind := range dataset.AttendanceTypes {
		values := make([]int, len(months))
		for i, m := range months {
			values[i] = m.ByType[kind]
		}
		series = append(series, map[string]any{"name": kind, "data": values})
	}
	return map[string]any{
		"title":    "Atendimentos por Tipo - 2025",
		"subtitle": "Janeiro a Agosto (estimativa)",
		"x_axis":   axis,
		"stack":    "total",
		"series":   series,
	}
}

func monthAbbrev(month string) string {
	runes := []rune(month)
	if len(runes) < 3 {
		return month
	}
	return strings.ToUpper(string(runes[:1])) + string(runes[1:3])
}

// unitPlacements places every health unit. Surveyed coordinates and landmark
// addresses are verified; anything else gets a synthetic placement around the
// town centre.
func unitPlacements() ([]dataset.HealthUnit, []geo.Placement) {
	units := dataset.HealthUnits()
	locator := geo.NewAddressLocator(geo.WithSeed(locatorSeed))
	placements := make([]geo.Placement, len(units))
	for i, u := range units {
		if lat, lng, ok := u.Coordinates(); ok {
			placements[i] = geo.Verified(geo.Point{Lat: lat, Lng: lng})
			continue
		}
		placements[i] = locator.Locate(u.Address, i)
	}
	return units, placements
}

func unitMap(title string) map[string]any {
	units, placements := unitPlacements()
	markers := make([]map[string]any, len(units))
	for i, u := range units {
		markers[i] = map[string]any{
			"name":     u.Name,
			"category": categoryLabels[u.Type.Category()],
			"color":    u.Type.MarkerColor(),
			"lat":      placements[i].Point.Lat,
			"lng":      placements[i].Point.Lng,
			"verified": placements[i].Kind == geo.KindVerified,
		}
	}
	return map[string]any{"title": title, "markers": markers}
}

func schoolMap() map[string]any {
	schools := dataset.Schools()
	locator := geo.NewAddressLocator(geo.WithSeed(locatorSeed))
	markers := make([]map[string]any, len(schools))
	for i, s := range schools {
		placement := locator.Locate(s.Address, i)
		markers[i] = map[string]any{
			"name":     s.Name,
			"category": string(s.Type),
			"color":    s.Type.MarkerColor(),
			"lat":      placement.Point.Lat,
			"lng":      placement.Point.Lng,
			"verified": placement.Kind == geo.KindVerified,
		}
	}
	return map[string]any{"title": "Mapa das Escolas", "markers": markers}
}

func unitTable(f *Formatter) map[string]any {
	units, placements := unitPlacements()
	rows := make([][]string, len(units))
	for i, u := range units {
		rows[i] = []string{u.Name, string(u.Type), u.Address, u.Zone.Label(), u.Phone, distanceFromCenter(f, placements[i])}
	}
	return map[string]any{
		"title":   "Unidades de Saúde",
		"columns": []string{"Nome", "Tipo", "Endereço", "Zona", "Telefone", "Distância do centro"},
		"rows":    rows,
		"source":  transparency.For(transparency.Real, "CNES").Caption(),
	}
}

// distanceFromCenter is only shown for verified placements; a synthetic point
// has no real distance.
func distanceFromCenter(f *Formatter, placement geo.Placement) string {
	point, ok := placement.Verified()
	if !ok {
		return "-"
	}
	return f.Decimal(geo.DistanceKm(geo.TownCenter, point), 1) + " km"
}

func schoolTable(f *Formatter) map[string]any {
	schools := dataset.Schools()
	rows := make([][]string, len(schools))
	for i, s := range schools {
		ideb := "-"
		if s.IDEB != nil {
			ideb = f.Decimal(*s.IDEB, 1)
		}
		rows[i] = []string{s.Name, s.INEP, string(s.Type), s.Zone.Label(), ideb}
	}
	avg, n := dataset.AverageIDEB(schools)
	return map[string]any{
		"title":    "Escolas Municipais",
		"subtitle": fmt.Sprintf("IDEB médio %s (%d escolas avaliadas)", f.Decimal(avg, 2), n),
		"columns":  []string{"Escola", "INEP", "Etapa", "Zona", "IDEB"},
		"rows":     rows,
	}
}
