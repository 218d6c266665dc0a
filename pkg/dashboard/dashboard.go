// Package dashboard is the public entry point for embedding the panel in
// another process.
package dashboard

import (
	core "github.com/nisiafloresta/painel-bi/components/dashboard"
)

// Workspace exposes the underlying components/dashboard.Workspace type.
type Workspace = core.Workspace

// BootstrapOptions re-export for convenience.
type BootstrapOptions = core.BootstrapOptions

// Renderer re-export for convenience.
type Renderer = core.Renderer

// Bootstrap proxies to the internal constructor.
func Bootstrap(opts BootstrapOptions) (*Workspace, error) {
	return core.Bootstrap(opts)
}

// NewTemplateRenderer proxies to the embedded template renderer.
func NewTemplateRenderer() (Renderer, error) {
	return core.NewTemplateRenderer()
}
