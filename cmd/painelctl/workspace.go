package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/sections"
	"github.com/nisiafloresta/painel-bi/pkg/config"
	painel "github.com/nisiafloresta/painel-bi/pkg/dashboard"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

// loadCatalog returns the embedded catalog unless SECTIONS_MANIFEST points
// at an override.
func loadCatalog(cfg *config.Config) (*sections.Catalog, error) {
	if cfg.SectionsManifest == "" {
		return sections.Default(), nil
	}
	cat, err := sections.Load(cfg.SectionsManifest)
	if err != nil {
		return nil, fmt.Errorf("painelctl: load sections manifest: %w", err)
	}
	return cat, nil
}

func newWorkspace(cfg *config.Config, completer llm.Completer, hook dashboard.RefreshHook, logger *zerolog.Logger) (*painel.Workspace, error) {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	temperature := cfg.ChatTemperature
	return painel.Bootstrap(painel.BootstrapOptions{
		Completer:   completer,
		Catalog:     catalog,
		ChatModel:   cfg.ChatModel(),
		MaxTokens:   cfg.ChatMaxTokens,
		Temperature: &temperature,
		ChatTimeout: cfg.ChatTimeout,
		AssetsHost:  cfg.EChartsCDN,
		RefreshHook: hook,
		Logger:      logger,
	})
}
