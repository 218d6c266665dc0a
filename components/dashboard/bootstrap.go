package dashboard

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nisiafloresta/painel-bi/components/chat"
	"github.com/nisiafloresta/painel-bi/components/sections"
	"github.com/nisiafloresta/painel-bi/components/situation"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

// DefaultChartCacheTTL bounds how long rendered chart markup is reused.
const DefaultChartCacheTTL = 5 * time.Minute

// BootstrapOptions collects what a process needs to serve the panel.
type BootstrapOptions struct {
	Completer     llm.Completer
	Catalog       *sections.Catalog
	ChatModel     string
	MaxTokens     int
	Temperature   *float64
	ChatTimeout   time.Duration
	ChartCacheTTL time.Duration
	AssetsHost    string
	RefreshHook   RefreshHook
	Room          situation.Options
	Logger        *zerolog.Logger
}

// RegisterChartProviders replaces the chart providers of reg with ones built
// from opts, e.g. to share a render cache.
func RegisterChartProviders(reg ProviderRegistry, opts ...EChartsProviderOption) error {
	for code, chartType := range chartTypes {
		if err := reg.RegisterProvider(code, NewEChartsProvider(chartType, opts...)); err != nil {
			return fmt.Errorf("register chart provider %s: %w", code, err)
		}
	}
	return nil
}

// Bootstrap wires registry, dashboard service, chat service and workspace.
func Bootstrap(opts BootstrapOptions) (*Workspace, error) {
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	if opts.Catalog == nil {
		opts.Catalog = sections.Default()
	}
	ttl := opts.ChartCacheTTL
	if ttl == 0 {
		ttl = DefaultChartCacheTTL
	}
	charts := NewChartCache(ttl)
	chartOpts := []EChartsProviderOption{WithChartCache(charts)}
	if opts.AssetsHost != "" {
		chartOpts = append(chartOpts, WithChartAssetsHost(ensureTrailingSlash(opts.AssetsHost)))
	}
	registry := NewRegistry()
	if err := RegisterChartProviders(registry, chartOpts...); err != nil {
		return nil, err
	}
	validator := NewJSONSchemaValidator()
	if err := validator.Prepare(registry.Definitions()); err != nil {
		return nil, err
	}
	telemetry := NewLogTelemetry(logger)
	service := NewService(Options{
		Registry:    registry,
		Validator:   validator,
		Catalog:     opts.Catalog,
		Charts:      charts,
		RefreshHook: opts.RefreshHook,
		Telemetry:   telemetry,
		Logger:      &logger,
	})
	chatService := chat.NewService(chat.Options{
		Completer:   opts.Completer,
		Catalog:     opts.Catalog,
		Model:       opts.ChatModel,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		Timeout:     opts.ChatTimeout,
		Logger:      &logger,
		Telemetry:   telemetry,
	})
	return NewWorkspace(WorkspaceOptions{
		Service: service,
		Chat:    chatService,
		Room:    opts.Room,
		Logger:  &logger,
	})
}
