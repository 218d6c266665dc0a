package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/dashboard/commands"
	"github.com/nisiafloresta/painel-bi/components/dashboard/gorouter"
	"github.com/nisiafloresta/painel-bi/components/dashboard/httpapi"
	"github.com/nisiafloresta/painel-bi/pkg/config"
	painel "github.com/nisiafloresta/painel-bi/pkg/dashboard"
	"github.com/nisiafloresta/painel-bi/pkg/observability"
)

const shutdownTimeout = 10 * time.Second

type serveCmd struct {
	Addr      string `help:"Listen address (defaults to SERVER_ADDR)."`
	Transport string `enum:"fiber,http" default:"fiber" help:"HTTP stack: fiber (go-router) or http (net/http mux)."`
	BasePath  string `default:"/painel" help:"Mount point of the panel."`
	NoWarm    bool   `name:"no-warm" help:"Skip pre-rendering charts at startup."`
}

// server is the part of router.Server and http.Server that serve needs.
type server interface {
	Serve(addr string) error
	Shutdown(ctx context.Context) error
}

func (c *serveCmd) Run(ctx context.Context, cfg *config.Config) error {
	addr := c.Addr
	if addr == "" {
		addr = cfg.ServerAddr
	}
	if err := observability.InitTracer(ctx, observability.TracingConfig{
		Enabled:     cfg.TracingEnabled,
		Endpoint:    cfg.TracingEndpoint,
		ServiceName: serviceName,
	}); err != nil {
		log.Warn().Err(err).Msg("tracing unavailable")
	}
	defer func() {
		if err := observability.ShutdownTracer(context.Background()); err != nil {
			log.Warn().Err(err).Msg("tracer shutdown failed")
		}
	}()

	completer, err := newCompleter(cfg)
	if err != nil {
		return err
	}
	hook := dashboard.NewBroadcastHook()
	logger := observability.GetLogger()
	events := dashboard.MultiHook{hook, dashboard.NewLogHook(*logger, dashboard.TopicRoom)}
	workspace, err := newWorkspace(cfg, completer, events, logger)
	if err != nil {
		return fmt.Errorf("painelctl: bootstrap: %w", err)
	}
	defer workspace.Shutdown()

	telemetry := dashboard.NewLogTelemetry(*logger)
	if !c.NoWarm {
		warm := commands.NewWarmChartsCommand(workspace.Service(), telemetry)
		if err := warm.Execute(ctx, commands.WarmChartsInput{}); err != nil {
			return err
		}
	}

	renderer, err := painel.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("painelctl: templates: %w", err)
	}
	pages := dashboard.NewController(dashboard.ControllerOptions{
		Pages:    workspace,
		Renderer: renderer,
		BasePath: c.BasePath,
	})
	bus := httpapi.NewCommandBus(workspace, telemetry)

	srv, err := c.build(pages, bus, hook)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Str("transport", c.Transport).Str("base_path", c.BasePath).Msg("serving panel")
		if err := srv.Serve(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (c *serveCmd) build(pages *dashboard.Controller, bus *httpapi.CommandBus, hook *dashboard.BroadcastHook) (server, error) {
	switch c.Transport {
	case "http":
		handlers := &httpapi.Handlers{
			API:      bus,
			Views:    bus,
			Pages:    pages,
			Events:   hook,
			BasePath: c.BasePath,
		}
		return newNetServer(handlers.Routes()), nil
	default:
		app := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
			return fiber.New(fiber.Config{
				AppName:               serviceName,
				DisableStartupMessage: true,
			})
		})
		if err := gorouter.Register(gorouter.Config[*fiber.App]{
			Router:    app.Router(),
			Pages:     pages,
			API:       bus,
			Views:     bus,
			Broadcast: hook,
			BasePath:  c.BasePath,
		}); err != nil {
			return nil, fmt.Errorf("painelctl: register routes: %w", err)
		}
		return app, nil
	}
}

// netServer adapts http.Server to the Serve(addr) shape of router.Server.
type netServer struct {
	srv *http.Server
}

func newNetServer(handler http.Handler) *netServer {
	return &netServer{srv: &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}}
}

func (s *netServer) Serve(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.srv.Serve(ln)
}

func (s *netServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
