package dashboard

import (
	"context"

	"github.com/nisiafloresta/painel-bi/components/transparency"
)

// ProviderRegistry stores panel definitions/providers discoverable via hooks.
type ProviderRegistry interface {
	RegisterDefinition(def PanelDefinition) error
	RegisterProvider(code string, provider Provider) error
	Definition(code string) (PanelDefinition, bool)
	Provider(code string) (Provider, bool)
	Definitions() []PanelDefinition
}

// RefreshHook notifies transports (REST/WebSocket) about state changes.
type RefreshHook interface {
	Publish(ctx context.Context, event Event) error
}

// ViewerContext identifies the session a view is rendered for.
type ViewerContext struct {
	UserID string
	Token  string
	Locale string
}

// PanelDefinition describes a kind of panel and the schema its configuration
// must satisfy.
type PanelDefinition struct {
	Code        string
	Name        string
	Description string
	Kind        string
	Schema      map[string]any
}

// PanelInstance is one panel placed on a section or situational screen.
type PanelInstance struct {
	ID            string
	DefinitionID  string
	Section       string
	Configuration map[string]any
}

// RenderedPanel is a panel after its provider ran.
type RenderedPanel struct {
	ID           string    `json:"id"`
	DefinitionID string    `json:"definition_id"`
	Kind         string    `json:"kind"`
	Data         PanelData `json:"data"`
}

// Card is a KPI tile.
type Card struct {
	Key       string             `json:"key"`
	Label     string             `json:"label"`
	Value     string             `json:"value"`
	Unit      string             `json:"unit,omitempty"`
	Reference string             `json:"reference,omitempty"`
	Badge     transparency.Badge `json:"badge"`
}

// SectionView is everything the shell shows for one tab.
type SectionView struct {
	ID     string          `json:"id"`
	Label  string          `json:"label"`
	Cards  []Card          `json:"cards"`
	Panels []RenderedPanel `json:"panels"`
}

// ScreenView is one screen of the situational room.
type ScreenView struct {
	Index  int             `json:"index"`
	Key    string          `json:"key"`
	Title  string          `json:"title"`
	Cards  []Card          `json:"cards"`
	Panels []RenderedPanel `json:"panels"`
}

// Event describes changes that transports might care about.
type Event struct {
	Topic   string `json:"topic"`
	Session string `json:"-"`
	Payload any    `json:"payload"`
}

// Topics published by the workspace.
const (
	TopicShell = "painel.shell"
	TopicRoom  = "painel.situacao"
	TopicChat  = "painel.chat"
)
