package dashboard

import (
	"fmt"

	"github.com/nisiafloresta/painel-bi/components/dataset"
	"github.com/nisiafloresta/painel-bi/components/situation"
	"github.com/nisiafloresta/painel-bi/components/transparency"
)

const roomSection = "sala"

func planScreen(screen situation.Screen, f *Formatter) sectionPlan {
	switch screen.Key {
	case "visao-geral":
		return planOverview(screen, f)
	case "comparativo-mensal":
		return planMonthlyComparison(screen, f)
	case "mapa":
		return sectionPlan{
			panels: []PanelInstance{panel(roomSection, screen.Key, PanelMap, unitMap(screen.Title))},
		}
	case "desempenho-unidades":
		return planUnitPerformance(screen, f)
	case "seguranca":
		return planSecurityRoom(screen, f)
	default:
		return sectionPlan{}
	}
}

func liveIndicators() []dataset.Indicator {
	live := dataset.Live()
	return []dataset.Indicator{
		{Key: "atendimentos_hoje", Label: "Atendimentos Hoje", Value: float64(live.AttendancesToday), Format: dataset.FormatInteger, Provenance: transparency.Simulado},
		{Key: "pacientes_aguardando", Label: "Pacientes Aguardando", Value: float64(live.WaitingPatients), Format: dataset.FormatInteger, Provenance: transparency.Simulado},
		{Key: "ocupacao_leitos", Label: "Ocupação de Leitos", Value: live.BedOccupancy(), Format: dataset.FormatPercent, Display: fmt.Sprintf("%d/%d", live.BedsInUse, live.BedsTotal), Provenance: transparency.Simulado},
		{Key: "ambulancias", Label: "Ambulâncias Ativas", Value: float64(live.AmbulancesActive), Format: dataset.FormatInteger, Display: fmt.Sprintf("%d/%d", live.AmbulancesActive, live.AmbulancesTotal), Provenance: transparency.Simulado},
		{Key: "emergencias", Label: "Emergências", Value: float64(live.Emergencies), Format: dataset.FormatInteger, Unit: "em andamento", Provenance: transparency.Simulado},
	}
}

func planOverview(screen situation.Screen, f *Formatter) sectionPlan {
	cfg := periodChart("Atendimentos por Especialidade", "Atendimentos", dataset.AttendanceBySpecialty())
	cfg["label_min_percent"] = 5
	cfg["donut"] = true
	return sectionPlan{
		cards:  f.Cards(liveIndicators()),
		panels: []PanelInstance{panel(roomSection, screen.Key, PanelPieChart, cfg)},
	}
}

func planMonthlyComparison(screen situation.Screen, f *Formatter) sectionPlan {
	months := dataset.MonthlyComparison2025()
	axis := make([]string, len(months))
	done := make([]int, len(months))
	goal := make([]int, len(months))
	rows := make([][]string, len(months))
	for i, m := range months {
		axis[i] = m.Month
		done[i] = m.Attendances
		goal[i] = m.Goal
		rows[i] = []string{m.Month, f.Integer(float64(m.Attendances)), f.Integer(float64(m.Goal)), signedPercent(f, m.Variation)}
	}
	chart := map[string]any{
		"title":  screen.Title,
		"x_axis": axis,
		"colors": []string{"#2563eb", "#dc2626"},
		"series": []map[string]any{
			{"name": "Atendimentos", "data": done},
			{"name": "Meta", "type": "line", "data": goal},
		},
	}
	table := map[string]any{
		"title":   "Variação sobre a meta",
		"columns": []string{"Mês", "Atendimentos", "Meta", "Variação"},
		"rows":    rows,
		"source":  transparency.For(transparency.Estimativa, "").Caption(),
	}
	return sectionPlan{
		panels: []PanelInstance{
			panel(roomSection, screen.Key, PanelBarChart, chart),
			panel(roomSection, screen.Key+".tabela", PanelTable, table),
		},
	}
}

func planUnitPerformance(screen situation.Screen, f *Formatter) sectionPlan {
	loads := dataset.UnitLoadJuly2025()
	axis := make([]string, len(loads))
	done := make([]int, len(loads))
	capacity := make([]int, len(loads))
	rows := make([][]string, len(loads))
	for i, l := range loads {
		axis[i] = l.Unit
		done[i] = l.Attendances
		capacity[i] = l.Capacity
		rows[i] = []string{l.Unit, f.Integer(float64(l.Attendances)), f.Integer(float64(l.Capacity)), f.Percent(l.Occupancy)}
	}
	chart := map[string]any{
		"title":      screen.Title,
		"x_axis":     axis,
		"colors":     []string{"#059669", "#cbd5e1"},
		"horizontal": true,
		"height":     "420px",
		"series":     []map[string]any{
			{"name": "Atendimentos", "data": done},
			{"name": "Capacidade", "data": capacity},
		},
	}
	table := map[string]any{
		"title":   "Taxa de ocupação",
		"columns": []string{"Unidade", "Atendimentos", "Capacidade", "Ocupação"},
		"rows":    rows,
		"source":  transparency.For(transparency.Estimativa, "").Caption(),
	}
	return sectionPlan{
		panels: []PanelInstance{
			panel(roomSection, screen.Key, PanelBarChart, chart),
			panel(roomSection, screen.Key+".tabela", PanelTable, table),
		},
	}
}

func planSecurityRoom(screen situation.Screen, f *Formatter) sectionPlan {
	return sectionPlan{
		cards: f.Cards(dataset.SecurityIndicators()),
		panels: []PanelInstance{
			panel(roomSection, screen.Key+".mensal", PanelLineChart, periodChart("Ocorrências Mensais 2025", "Ocorrências", dataset.MonthlyOccurrences2025())),
			panel(roomSection, screen.Key+".tipos", PanelPieChart, periodChart("Ocorrências por Tipo (%)", "Ocorrências", dataset.OccurrencesByType())),
		},
	}
}

func signedPercent(f *Formatter, v float64) string {
	if v > 0 {
		return "+" + f.Percent(v)
	}
	return f.Percent(v)
}
