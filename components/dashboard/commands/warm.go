package commands

import (
	"context"
	"errors"
	"fmt"

	gocommand "github.com/goliatone/go-command"

	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/situation"
)

// WarmChartsInput selects what to pre-render. Empty Sections means every tab.
type WarmChartsInput struct {
	Sections    []string
	SkipScreens bool
}

type renderService interface {
	RenderSection(ctx context.Context, viewer dashboard.ViewerContext, id string) (dashboard.SectionView, error)
	RenderScreen(ctx context.Context, viewer dashboard.ViewerContext, index int) (dashboard.ScreenView, error)
}

type chartStatsReporter interface {
	ChartStats() dashboard.CacheStats
}

// WarmChartsCommand renders sections and screens once so the chart cache is
// filled before the first visitor arrives.
type WarmChartsCommand struct {
	service   renderService
	telemetry Telemetry
}

// NewWarmChartsCommand wires dependencies.
func NewWarmChartsCommand(service renderService, telemetry Telemetry) *WarmChartsCommand {
	return &WarmChartsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[WarmChartsInput] = (*WarmChartsCommand)(nil)

// Execute renders every requested view and stops at the first failure.
func (c *WarmChartsCommand) Execute(ctx context.Context, msg WarmChartsInput) error {
	if c.service == nil {
		return errors.New("warm command requires service")
	}
	ids := msg.Sections
	if len(ids) == 0 {
		ids = dashboard.Tabs()
	}
	viewer := dashboard.ViewerContext{UserID: "system"}
	panels := 0
	for _, id := range ids {
		view, err := c.service.RenderSection(ctx, viewer, id)
		if err != nil {
			return fmt.Errorf("warm section %s: %w", id, err)
		}
		panels += len(view.Panels)
	}
	screens := 0
	if !msg.SkipScreens {
		for i := 0; i < situation.ScreenCount; i++ {
			view, err := c.service.RenderScreen(ctx, viewer, i)
			if err != nil {
				return fmt.Errorf("warm screen %d: %w", i, err)
			}
			panels += len(view.Panels)
			screens++
		}
	}
	fields := map[string]any{
		"sections": len(ids),
		"screens":  screens,
		"panels":   panels,
	}
	if reporter, ok := c.service.(chartStatsReporter); ok {
		stats := reporter.ChartStats()
		fields["cached_charts"] = stats.Entries
		fields["cache_hits"] = stats.Hits
	}
	c.telemetry.Record(ctx, "painel.charts.warm", fields)
	return nil
}
