package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nisiafloresta/painel-bi/components/sections"
	"github.com/nisiafloresta/painel-bi/components/situation"
)

var (
	// ErrUnknownSection is returned for tab ids without a renderer.
	ErrUnknownSection = errors.New("dashboard: unknown section")
	// ErrUnknownPanel is returned when a panel references an unregistered definition.
	ErrUnknownPanel = errors.New("dashboard: unknown panel definition")
)

// Options configures the dashboard Service. Every collaborator is provided via
// interface so applications can swap implementations.
type Options struct {
	Registry    ProviderRegistry
	Validator   ConfigValidator
	Catalog     *sections.Catalog
	Formatter   *Formatter
	Charts      *ChartCache
	RefreshHook RefreshHook
	Telemetry   Telemetry
	Logger      *zerolog.Logger
}

// Service derives section and situational screen views from the static
// dataset on every call.
type Service struct {
	opts   Options
	logger zerolog.Logger
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}
	if opts.Validator == nil {
		opts.Validator = NewJSONSchemaValidator()
	}
	if opts.Catalog == nil {
		opts.Catalog = sections.Default()
	}
	if opts.Formatter == nil {
		opts.Formatter = NewFormatter(defaultLocale)
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Service{
		opts:   opts,
		logger: logger.With().Str("component", "dashboard").Logger(),
	}
}

// Catalog exposes the section catalog used for labels.
func (s *Service) Catalog() *sections.Catalog {
	return s.opts.Catalog
}

// ChartStats reports the render cache shared by the chart providers. It is
// zero when the service was built without one.
func (s *Service) ChartStats() CacheStats {
	return s.opts.Charts.Stats()
}

// Registry exposes the panel registry.
func (s *Service) Registry() ProviderRegistry {
	return s.opts.Registry
}

// TabLink is one entry of the section navigation.
type TabLink struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Navigation lists the tabs, flagging active.
func (s *Service) Navigation(active string) []TabLink {
	out := make([]TabLink, 0, len(shellTabs))
	for _, id := range shellTabs {
		label := id
		if section, ok := s.opts.Catalog.Lookup(id); ok && section.Label != "" {
			label = section.Label
		}
		out = append(out, TabLink{ID: id, Label: label, Active: id == active})
	}
	return out
}

// RenderSection builds the cards and panels of one tab.
func (s *Service) RenderSection(ctx context.Context, viewer ViewerContext, id string) (SectionView, error) {
	plan, ok := planSection(id, s.opts.Formatter)
	if !ok {
		return SectionView{}, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	panels, err := s.renderPanels(ctx, viewer, plan.panels)
	if err != nil {
		return SectionView{}, err
	}
	label := id
	if section, ok := s.opts.Catalog.Lookup(id); ok && section.Label != "" {
		label = section.Label
	}
	s.recordTelemetry(ctx, "dashboard.section.render", map[string]any{
		"section": id,
		"panels":  len(panels),
		"user_id": viewer.UserID,
	})
	return SectionView{ID: id, Label: label, Cards: plan.cards, Panels: panels}, nil
}

// RenderScreen builds one situational room screen.
func (s *Service) RenderScreen(ctx context.Context, viewer ViewerContext, index int) (ScreenView, error) {
	if index < 0 || index >= situation.ScreenCount {
		return ScreenView{}, fmt.Errorf("%w: %d", situation.ErrUnknownScreen, index)
	}
	screen := situation.Screens[index]
	plan := planScreen(screen, s.opts.Formatter)
	panels, err := s.renderPanels(ctx, viewer, plan.panels)
	if err != nil {
		return ScreenView{}, err
	}
	s.recordTelemetry(ctx, "dashboard.screen.render", map[string]any{
		"screen":  screen.Key,
		"user_id": viewer.UserID,
	})
	return ScreenView{
		Index:  screen.Index,
		Key:    screen.Key,
		Title:  screen.Title,
		Cards:  plan.cards,
		Panels: panels,
	}, nil
}

func (s *Service) renderPanels(ctx context.Context, viewer ViewerContext, instances []PanelInstance) ([]RenderedPanel, error) {
	out := make([]RenderedPanel, 0, len(instances))
	for _, inst := range instances {
		def, ok := s.opts.Registry.Definition(inst.DefinitionID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPanel, inst.DefinitionID)
		}
		if err := s.opts.Validator.Validate(def, inst.Configuration); err != nil {
			return nil, err
		}
		provider, ok := s.opts.Registry.Provider(inst.DefinitionID)
		if !ok {
			return nil, fmt.Errorf("%w: no provider for %s", ErrUnknownPanel, inst.DefinitionID)
		}
		data, err := provider.Fetch(ctx, PanelContext{Instance: inst, Viewer: viewer})
		if err != nil {
			s.logger.Warn().Err(err).Str("panel", inst.ID).Msg("panel provider failed")
			return nil, fmt.Errorf("dashboard: panel %s: %w", inst.ID, err)
		}
		out = append(out, RenderedPanel{
			ID:           inst.ID,
			DefinitionID: inst.DefinitionID,
			Kind:         def.Kind,
			Data:         data,
		})
	}
	return out, nil
}

// Publish forwards event to the configured refresh hook.
func (s *Service) Publish(ctx context.Context, event Event) {
	if err := s.opts.RefreshHook.Publish(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("topic", event.Topic).Msg("refresh hook failed")
	}
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	if meta := activityContextFrom(ctx); meta.Channel != "" {
		payload["channel"] = meta.Channel
	}
	s.opts.Telemetry.Record(ctx, event, payload)
}
