package dashboard

// Panel codes registered by default.
const (
	PanelBarChart  = "painel.chart.bar"
	PanelLineChart = "painel.chart.line"
	PanelPieChart  = "painel.chart.pie"
	PanelAreaChart = "painel.chart.area"
	PanelTable     = "painel.table"
	PanelMap       = "painel.map"
)

// Panel kinds, used by templates to pick a partial.
const (
	KindChart = "chart"
	KindTable = "table"
	KindMap   = "map"
)

var chartTypes = map[string]string{
	PanelBarChart:  "bar",
	PanelLineChart: "line",
	PanelPieChart:  "pie",
	PanelAreaChart: "area",
}

var defaultPanelDefinitions = []PanelDefinition{
	{Code: PanelBarChart, Name: "Gráfico de barras", Kind: KindChart, Schema: chartSchema()},
	{Code: PanelLineChart, Name: "Gráfico de linhas", Kind: KindChart, Schema: chartSchema()},
	{Code: PanelPieChart, Name: "Gráfico de pizza", Kind: KindChart, Schema: chartSchema()},
	{Code: PanelAreaChart, Name: "Gráfico de área", Kind: KindChart, Schema: chartSchema()},
	{
		Code:        PanelTable,
		Name:        "Tabela",
		Description: "Lista tabular de estabelecimentos ou indicadores",
		Kind:        KindTable,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"title", "columns", "rows"},
			"properties": map[string]any{
				"title":   map[string]any{"type": "string", "minLength": 1},
				"columns": map[string]any{"type": "array", "minItems": 1, "items": map[string]any{"type": "string"}},
				"rows": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
		},
	},
	{
		Code:        PanelMap,
		Name:        "Mapa",
		Description: "Sobreposição de marcadores projetados sobre o mapa do município",
		Kind:        KindMap,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"title", "markers"},
			"properties": map[string]any{
				"title": map[string]any{"type": "string", "minLength": 1},
				"markers": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []string{"name", "lat", "lng"},
						"properties": map[string]any{
							"name":     map[string]any{"type": "string"},
							"category": map[string]any{"type": "string"},
							"color":    map[string]any{"type": "string"},
							"lat":      map[string]any{"type": "number", "minimum": -90, "maximum": 90},
							"lng":      map[string]any{"type": "number", "minimum": -180, "maximum": 180},
							"verified": map[string]any{"type": "boolean"},
						},
					},
				},
			},
		},
	},
}

func chartSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"title", "series"},
		"properties": map[string]any{
			"title":      map[string]any{"type": "string", "minLength": 1},
			"subtitle":   map[string]any{"type": "string"},
			"x_axis":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"colors":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"stack":      map[string]any{"type": "string"},
			"height":     map[string]any{"type": "string"},
			"theme":      map[string]any{"type": "string"},
			"unit":       map[string]any{"enum": []string{UnitCount, UnitCurrency, UnitPercent}},
			"goal":       map[string]any{"type": "number", "minimum": 0},
			"goal_label": map[string]any{"type": "string"},
			"horizontal": map[string]any{"type": "boolean"},
			"donut":      map[string]any{"type": "boolean"},
			"label_min_percent": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 100,
			},
			"series": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name", "data"},
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
						"type": map[string]any{"enum": []string{"bar", "line"}},
						"data": map[string]any{"type": "array", "minItems": 1},
					},
				},
			},
		},
	}
}

// DefaultPanelDefinitions returns the built-in panel definitions.
func DefaultPanelDefinitions() []PanelDefinition {
	out := make([]PanelDefinition, len(defaultPanelDefinitions))
	copy(out, defaultPanelDefinitions)
	return out
}

func defaultProvider(def PanelDefinition) Provider {
	switch def.Kind {
	case KindChart:
		return NewEChartsProvider(chartTypes[def.Code])
	case KindTable:
		return TableProvider{}
	case KindMap:
		return NewMapProvider()
	default:
		return nil
	}
}
