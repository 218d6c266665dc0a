package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	defaultChartHeight = "320px"
	defaultChartTheme  = types.ThemeWesteros
)

// Units understood by the tooltip formatter.
const (
	UnitCount    = ""
	UnitCurrency = "R$"
	UnitPercent  = "%"
)

var errChartSeriesRequired = errors.New("dashboard: chart series is required")

var sharedChartCache = NewChartCache(5 * time.Minute)

// Tooltip formatters run in the browser and must match the pt-BR formatting
// of the KPI cards.
var tooltipFormatters = map[string]string{
	UnitCount:    `function (value) { return Number(value).toLocaleString('pt-BR'); }`,
	UnitCurrency: `function (value) { return 'R$ ' + Number(value).toLocaleString('pt-BR', {maximumFractionDigits: 0}); }`,
	UnitPercent:  `function (value) { return Number(value).toLocaleString('pt-BR', {maximumFractionDigits: 1}) + '%'; }`,
}

const pieLabelFormatter = `function (params) { return params.percent >= %s ? params.name + ': ' + params.percent.toFixed(0) + '%%' : ''; }`

// ChartSeries is one legend entry. Kind "line" overlays the series on a bar
// chart; anything else follows the provider's chart type.
type ChartSeries struct {
	Name   string
	Kind   string
	Points []ChartPoint
}

// ChartPoint is one value, optionally labeled or colored.
type ChartPoint struct {
	Label string
	Value float64
	Color string
}

// chartSpec is the decoded configuration of a chart panel.
type chartSpec struct {
	Title      string
	Subtitle   string
	Axis       []string
	Series     []ChartSeries
	Height     string
	Colors     []string
	Stack      string
	Theme      string
	Unit       string
	Goal       float64
	GoalLabel  string
	Horizontal bool
	Donut      bool
	// pie slices below this share get no label
	LabelMinPercent float64
}

func decodeChartSpec(cfg map[string]any) (chartSpec, error) {
	spec := chartSpec{
		Title:           stringValue(cfg["title"], "Gráfico"),
		Subtitle:        stringValue(cfg["subtitle"], ""),
		Axis:            stringSliceValue(cfg["x_axis"]),
		Series:          parseChartSeries(cfg["series"]),
		Height:          stringValue(cfg["height"], defaultChartHeight),
		Colors:          stringSliceValue(cfg["colors"]),
		Stack:           stringValue(cfg["stack"], ""),
		Theme:           strings.TrimSpace(stringValue(cfg["theme"], "")),
		Unit:            stringValue(cfg["unit"], UnitCount),
		Goal:            float64Value(cfg["goal"]),
		GoalLabel:       stringValue(cfg["goal_label"], "Meta"),
		Horizontal:      boolValue(cfg["horizontal"]),
		Donut:           boolValue(cfg["donut"]),
		LabelMinPercent: float64Value(cfg["label_min_percent"]),
	}
	if len(spec.Series) == 0 {
		return chartSpec{}, errChartSeriesRequired
	}
	if _, ok := tooltipFormatters[spec.Unit]; !ok {
		return chartSpec{}, fmt.Errorf("dashboard: unsupported chart unit %q", spec.Unit)
	}
	if len(spec.Axis) == 0 {
		spec.Axis = inferredAxisLabels(spec.Series)
	}
	return spec, nil
}

// ThemeResolver selects a chart theme per viewer.
type ThemeResolver func(ViewerContext) string

// EChartsProvider renders server-side chart HTML for one chart type.
type EChartsProvider struct {
	chartType     string
	cache         RenderCache
	theme         string
	themeResolver ThemeResolver
	assetsHost    string
}

// EChartsProviderOption customizes provider behavior.
type EChartsProviderOption func(*EChartsProvider)

// WithChartCache injects a render cache. Nil disables caching.
func WithChartCache(cache RenderCache) EChartsProviderOption {
	return func(p *EChartsProvider) {
		p.cache = cache
	}
}

// WithChartTheme sets a static theme.
func WithChartTheme(theme string) EChartsProviderOption {
	return func(p *EChartsProvider) {
		p.theme = theme
	}
}

// WithChartThemeResolver resolves themes per viewer.
func WithChartThemeResolver(resolver ThemeResolver) EChartsProviderOption {
	return func(p *EChartsProvider) {
		p.themeResolver = resolver
	}
}

// WithChartAssetsHost sets where the ECharts runtime is loaded from.
func WithChartAssetsHost(host string) EChartsProviderOption {
	return func(p *EChartsProvider) {
		p.assetsHost = host
	}
}

// NewEChartsProvider builds a provider for bar, line, pie or area charts.
func NewEChartsProvider(chartType string, opts ...EChartsProviderOption) *EChartsProvider {
	p := &EChartsProvider{
		chartType:  strings.ToLower(chartType),
		cache:      sharedChartCache,
		theme:      defaultChartTheme,
		assetsHost: DefaultEChartsAssetsCDN,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ChartType reports the chart kind rendered by the provider.
func (p *EChartsProvider) ChartType() string {
	return p.chartType
}

// Fetch turns the panel configuration into go-echarts markup.
func (p *EChartsProvider) Fetch(_ context.Context, meta PanelContext) (PanelData, error) {
	cfg := meta.Instance.Configuration
	if cfg == nil {
		cfg = map[string]any{}
	}
	spec, err := decodeChartSpec(cfg)
	if err != nil {
		return nil, err
	}
	if spec.Theme == "" {
		spec.Theme = p.resolveTheme(meta.Viewer)
	}

	render := func() (string, error) { return p.render(spec) }
	var html string
	if p.cache != nil {
		key := strings.Join([]string{meta.Instance.DefinitionID, meta.Instance.ID, p.chartType, spec.Theme, configHash(cfg)}, ":")
		html, err = p.cache.GetOrRender(key, render)
	} else {
		html, err = render()
	}
	if err != nil {
		return nil, err
	}

	return PanelData{
		"chart_html": html,
		"chart_type": p.chartType,
		"title":      spec.Title,
		"subtitle":   spec.Subtitle,
		"theme":      spec.Theme,
		"unit":       spec.Unit,
	}, nil
}

func (p *EChartsProvider) render(spec chartSpec) (string, error) {
	switch p.chartType {
	case "bar":
		return renderChart(p.barChart(spec))
	case "line":
		return renderChart(p.lineChart(spec, false))
	case "area":
		return renderChart(p.lineChart(spec, true))
	case "pie":
		return renderChart(p.pieChart(spec))
	default:
		return "", fmt.Errorf("dashboard: unsupported chart type: %s", p.chartType)
	}
}

func (p *EChartsProvider) barChart(spec chartSpec) *charts.Bar {
	bar := charts.NewBar()
	global := p.globalOptions(spec)
	if spec.Horizontal {
		global = append(global,
			charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
			charts.WithYAxisOpts(opts.YAxis{Type: "category"}),
		)
	}
	bar.SetGlobalOptions(global...)
	bar.SetXAxis(spec.Axis)

	var overlay *charts.Line
	first := true
	for _, s := range spec.Series {
		if s.Kind == "line" {
			if overlay == nil {
				overlay = charts.NewLine()
				overlay.SetXAxis(spec.Axis)
			}
			overlay.AddSeries(s.Name, toLineData(s.Points), charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
			continue
		}
		var seriesOpts []charts.SeriesOpts
		if spec.Stack != "" {
			seriesOpts = append(seriesOpts, charts.WithBarChartOpts(opts.BarChart{Stack: spec.Stack}))
		}
		if first && spec.Goal > 0 {
			seriesOpts = append(seriesOpts, goalLine(spec))
		}
		first = false
		bar.AddSeries(s.Name, toBarData(s.Points), seriesOpts...)
	}
	if overlay != nil {
		bar.Overlap(overlay)
	}
	if spec.Horizontal {
		bar.XYReversal()
	}
	return bar
}

func goalLine(spec chartSpec) charts.SeriesOpts {
	if spec.Horizontal {
		return charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{Name: spec.GoalLabel, XAxis: spec.Goal})
	}
	return charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: spec.GoalLabel, YAxis: spec.Goal})
}

func (p *EChartsProvider) lineChart(spec chartSpec, area bool) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(p.globalOptions(spec)...)
	line.SetXAxis(spec.Axis)
	for i, s := range spec.Series {
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), Stack: spec.Stack}),
		}
		if area {
			seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.3)}))
		}
		if i == 0 && spec.Goal > 0 {
			seriesOpts = append(seriesOpts, goalLine(spec))
		}
		line.AddSeries(s.Name, toLineData(s.Points), seriesOpts...)
	}
	return line
}

func (p *EChartsProvider) pieChart(spec chartSpec) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(p.globalOptions(spec)...)
	for _, s := range spec.Series {
		var seriesOpts []charts.SeriesOpts
		if spec.Donut {
			seriesOpts = append(seriesOpts, charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}))
		}
		if spec.LabelMinPercent > 0 {
			threshold := strconv.FormatFloat(spec.LabelMinPercent, 'f', -1, 64)
			seriesOpts = append(seriesOpts, charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: opts.FuncOpts(fmt.Sprintf(pieLabelFormatter, threshold)),
			}))
		}
		pie.AddSeries(s.Name, toPieData(s.Points), seriesOpts...)
	}
	return pie
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (p *EChartsProvider) globalOptions(spec chartSpec) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  spec.Theme,
		Width:  "100%",
		Height: spec.Height,
	}
	if p.assetsHost != "" {
		initOpts.AssetsHost = p.assetsHost
	}
	global := []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: spec.Title, Subtitle: spec.Subtitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:           opts.Bool(true),
			ValueFormatter: opts.FuncOpts(tooltipFormatters[spec.Unit]),
		}),
		charts.WithToolboxOpts(opts.Toolbox{Show: opts.Bool(true)}),
	}
	if len(spec.Colors) > 0 {
		global = append(global, charts.WithColorsOpts(opts.Colors(spec.Colors)))
	}
	return global
}

func (p *EChartsProvider) resolveTheme(viewer ViewerContext) string {
	if p.themeResolver != nil {
		if theme := p.themeResolver(viewer); theme != "" {
			return theme
		}
	}
	if p.theme != "" {
		return p.theme
	}
	return defaultChartTheme
}

func toBarData(points []ChartPoint) []opts.BarData {
	data := make([]opts.BarData, len(points))
	for i, point := range points {
		data[i] = opts.BarData{Name: point.Label, Value: point.Value}
		if point.Color != "" {
			data[i].ItemStyle = &opts.ItemStyle{Color: point.Color}
		}
	}
	return data
}

func toLineData(points []ChartPoint) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, point := range points {
		data[i] = opts.LineData{Name: point.Label, Value: point.Value}
	}
	return data
}

func toPieData(points []ChartPoint) []opts.PieData {
	data := make([]opts.PieData, len(points))
	for i, point := range points {
		name := point.Label
		if name == "" {
			name = fmt.Sprintf("Fatia %d", i+1)
		}
		data[i] = opts.PieData{Name: name, Value: point.Value}
		if point.Color != "" {
			data[i].ItemStyle = &opts.ItemStyle{Color: point.Color}
		}
	}
	return data
}

func parseChartSeries(v any) []ChartSeries {
	var items []map[string]any
	switch val := v.(type) {
	case []map[string]any:
		items = val
	case []any:
		for _, item := range val {
			if m, ok := item.(map[string]any); ok {
				items = append(items, m)
			}
		}
	}
	out := make([]ChartSeries, 0, len(items))
	for _, item := range items {
		series := ChartSeries{
			Name:   stringValue(item["name"], "Série"),
			Kind:   strings.ToLower(stringValue(item["type"], "")),
			Points: parseChartPoints(item["data"]),
		}
		if len(series.Points) > 0 {
			out = append(out, series)
		}
	}
	return out
}

func parseChartPoints(v any) []ChartPoint {
	switch value := v.(type) {
	case []float64:
		points := make([]ChartPoint, len(value))
		for i, val := range value {
			points[i] = ChartPoint{Value: val}
		}
		return points
	case []int:
		points := make([]ChartPoint, len(value))
		for i, val := range value {
			points[i] = ChartPoint{Value: float64(val)}
		}
		return points
	case []map[string]any:
		points := make([]ChartPoint, 0, len(value))
		for _, item := range value {
			points = append(points, pointFromMap(item))
		}
		return points
	case []any:
		points := make([]ChartPoint, 0, len(value))
		for _, item := range value {
			switch val := item.(type) {
			case float64, float32, int, int64, json.Number:
				points = append(points, ChartPoint{Value: float64Value(val)})
			case map[string]any:
				points = append(points, pointFromMap(val))
			}
		}
		return points
	default:
		return nil
	}
}

func pointFromMap(m map[string]any) ChartPoint {
	return ChartPoint{
		Label: stringValue(m["name"], ""),
		Value: float64Value(m["value"]),
		Color: stringValue(m["color"], ""),
	}
}

// inferredAxisLabels takes the labels of the longest series, numbering the
// unlabeled points.
func inferredAxisLabels(series []ChartSeries) []string {
	var labels []string
	for _, s := range series {
		if len(s.Points) <= len(labels) {
			continue
		}
		labels = make([]string, len(s.Points))
		for i, point := range s.Points {
			labels[i] = point.Label
			if labels[i] == "" {
				labels[i] = fmt.Sprintf("Item %d", i+1)
			}
		}
	}
	return labels
}
