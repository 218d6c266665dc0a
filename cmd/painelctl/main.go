package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/nisiafloresta/painel-bi/pkg/config"
	"github.com/nisiafloresta/painel-bi/pkg/observability"
)

const serviceName = "painel-bi"

type cli struct {
	Serve    serveCmd    `cmd:"" help:"Serve the panel over HTTP."`
	Ask      askCmd      `cmd:"" help:"Ask the assistant a question about one section."`
	Sections sectionsCmd `cmd:"" help:"List the dashboard sections and their suggested questions."`
	Project  projectCmd  `cmd:"" help:"Project coordinates onto map percentages."`
	Badge    badgeCmd    `cmd:"" help:"Show the transparency badge for a provenance tag."`
	Export   exportCmd   `cmd:"" help:"Render every chart panel to standalone HTML files."`
}

func main() {
	cfg := config.Load()
	observability.InitLogger(serviceName, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&cli{},
		kong.Name("painelctl"),
		kong.Description("Painel BI de Nísia Floresta: servidor e utilitários."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(cfg),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
