package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ettle/strcase"
	"github.com/rs/zerolog/log"

	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/situation"
	"github.com/nisiafloresta/painel-bi/pkg/config"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

type exportCmd struct {
	Out     string   `short:"o" type:"path" default:"export" help:"Directory receiving the HTML files."`
	Section []string `help:"Sections to export (defaults to every tab)."`
	Screens bool     `help:"Also export the situational room screens."`
}

func (c *exportCmd) Run(ctx context.Context, cfg *config.Config) error {
	// Chart rendering never reaches the completer.
	workspace, err := newWorkspace(cfg, llm.NewMockClient(), nil, &log.Logger)
	if err != nil {
		return err
	}
	defer workspace.Shutdown()
	written, err := c.export(ctx, workspace.Service())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✓ %d gráficos exportados para %s\n", written, c.Out)
	return nil
}

func (c *exportCmd) export(ctx context.Context, service *dashboard.Service) (int, error) {
	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return 0, fmt.Errorf("painelctl: mkdir %s: %w", c.Out, err)
	}
	ids := c.Section
	if len(ids) == 0 {
		ids = dashboard.Tabs()
	}
	viewer := dashboard.ViewerContext{UserID: "export"}
	ctx = dashboard.ContextWithActivity(ctx, dashboard.ActivityContext{UserID: viewer.UserID, Channel: dashboard.ChannelCLI})
	written := 0
	for _, id := range ids {
		view, err := service.RenderSection(ctx, viewer, id)
		if err != nil {
			return written, err
		}
		n, err := c.writePanels(view.Panels)
		written += n
		if err != nil {
			return written, err
		}
	}
	if !c.Screens {
		return written, nil
	}
	for i := 0; i < situation.ScreenCount; i++ {
		view, err := service.RenderScreen(ctx, viewer, i)
		if err != nil {
			return written, err
		}
		n, err := c.writePanels(view.Panels)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func (c *exportCmd) writePanels(panels []dashboard.RenderedPanel) (int, error) {
	written := 0
	for _, panel := range panels {
		html, ok := panel.Data["chart_html"].(string)
		if !ok || html == "" {
			continue
		}
		path := filepath.Join(c.Out, exportFileName(panel.ID))
		if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
			return written, fmt.Errorf("painelctl: write %s: %w", path, err)
		}
		written++
	}
	return written, nil
}

// exportFileName turns a panel id such as "saude.tendencia" into a kebab-case
// HTML file name.
func exportFileName(panelID string) string {
	return strcase.ToKebab(panelID) + ".html"
}
