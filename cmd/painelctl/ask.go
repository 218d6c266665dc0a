package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nisiafloresta/painel-bi/components/chat"
	"github.com/nisiafloresta/painel-bi/pkg/config"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
	"github.com/nisiafloresta/painel-bi/pkg/observability"
)

type askCmd struct {
	Section  string   `short:"s" default:"unidades" help:"Section the question is about."`
	Question []string `arg:"" help:"Question text."`
}

func (c *askCmd) Run(ctx context.Context, cfg *config.Config) error {
	completer, err := newCompleter(cfg)
	if err != nil {
		return err
	}
	return c.ask(ctx, cfg, completer)
}

func (c *askCmd) ask(ctx context.Context, cfg *config.Config, completer llm.Completer) error {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	if !catalog.Has(c.Section) {
		return fmt.Errorf("painelctl: unknown section %q (known: %s)", c.Section, strings.Join(catalog.IDs(), ", "))
	}
	question := strings.TrimSpace(strings.Join(c.Question, " "))
	if question == "" {
		return errors.New("painelctl: question is empty")
	}

	temperature := cfg.ChatTemperature
	service := chat.NewService(chat.Options{
		Completer:   completer,
		Catalog:     catalog,
		Model:       cfg.ChatModel(),
		MaxTokens:   cfg.ChatMaxTokens,
		Temperature: &temperature,
		Timeout:     cfg.ChatTimeout,
		Logger:      observability.LoggerFromContext(ctx),
	})
	conv := chat.NewConversation(c.Section)
	service.Open(conv, c.Section)
	widget, sendErr := service.Send(ctx, conv, question)
	if n := len(widget.History); n > 0 {
		fmt.Fprintln(stdout, widget.History[n-1].Content)
	}
	return sendErr
}
