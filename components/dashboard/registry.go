package dashboard

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	errMissingPanelCode = errors.New("dashboard: panel definition code is required")
	errNilProvider      = errors.New("dashboard: provider cannot be nil")
)

type registryEntry struct {
	def      PanelDefinition
	provider Provider
}

// Registry maps panel codes to their definition and data provider. It starts
// with the built-in panel kinds; a transport may re-register providers, e.g.
// to share a chart cache.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

// NewRegistry builds a registry holding the built-in panels.
func NewRegistry() *Registry {
	reg := &Registry{entries: map[string]registryEntry{}}
	for _, def := range DefaultPanelDefinitions() {
		reg.entries[def.Code] = registryEntry{def: def, provider: defaultProvider(def)}
	}
	return reg
}

// RegisterDefinition stores or replaces panel metadata, keeping a provider
// already bound to the code.
func (r *Registry) RegisterDefinition(def PanelDefinition) error {
	if def.Code == "" {
		return errMissingPanelCode
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := r.entries[def.Code]
	entry.def = def
	r.entries[def.Code] = entry
	return nil
}

// RegisterProvider binds provider to an existing definition.
func (r *Registry) RegisterProvider(code string, provider Provider) error {
	if code == "" {
		return errMissingPanelCode
	}
	if provider == nil {
		return errNilProvider
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPanel, code)
	}
	entry.provider = provider
	r.entries[code] = entry
	return nil
}

// Definition looks up a panel definition.
func (r *Registry) Definition(code string) (PanelDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[code]
	return entry.def, ok
}

// Provider looks up the provider bound to code.
func (r *Registry) Provider(code string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[code]
	if !ok || entry.provider == nil {
		return nil, false
	}
	return entry.provider, true
}

// Definitions lists every definition sorted by code.
func (r *Registry) Definitions() []PanelDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]PanelDefinition, 0, len(r.entries))
	for _, entry := range r.entries {
		defs = append(defs, entry.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Code < defs[j].Code })
	return defs
}
