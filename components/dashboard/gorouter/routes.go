package gorouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/nisiafloresta/painel-bi/components/auth"
	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/dashboard/commands"
	"github.com/nisiafloresta/painel-bi/components/dashboard/httpapi"
	"github.com/nisiafloresta/painel-bi/components/dashboard/queries"
)

// Config wires go-router with the panel pages, APIs and live events.
type Config[T any] struct {
	Router    router.Router[T]
	Pages     httpapi.Pages
	API       httpapi.Executor
	Views     httpapi.Reader
	Broadcast *dashboard.BroadcastHook
	BasePath  string
	Routes    RouteConfig
	NewToken  func() string
}

// RouteConfig customizes the relative paths used for panel endpoints.
type RouteConfig struct {
	Login        string
	LoginAPI     string
	Logout       string
	Shell        string
	Tab          string
	Section      string
	Room         string
	EnterRoom    string
	ExitRoom     string
	SelectScreen string
	Chat         string
	OpenChat     string
	CloseChat    string
	Messages     string
	WebSocket    string
}

// Register mounts the panel routes (HTML, JSON, WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Pages == nil {
		return errors.New("gorouter: pages are required")
	}
	if cfg.API == nil || cfg.Views == nil {
		return errors.New("gorouter: api and views are required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := strings.TrimSuffix(cfg.BasePath, "/")
	if base == "" {
		base = httpapi.DefaultBasePath
	}
	mint := cfg.NewToken
	if mint == nil {
		mint = httpapi.MintToken
	}

	cfg.Router.Get(base, router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		err := cfg.Pages.RenderPage(activity(ctx), session(ctx), &buf)
		if errors.Is(err, dashboard.ErrUnauthenticated) {
			return ctx.Redirect(base+routes.Login, http.StatusSeeOther)
		}
		if err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	group := cfg.Router.Group(base)

	group.Get(routes.Login, router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		if err := cfg.Pages.RenderLogin(activity(ctx), session(ctx), &buf); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	registerAPI(group, cfg, routes, mint)

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}
	return nil
}

func registerAPI[T any](r router.Router[T], cfg Config[T], routes RouteConfig, mint func() string) {
	api, views := cfg.API, cfg.Views

	r.Post(routes.LoginAPI, router.WrapHandler(func(ctx router.Context) error {
		var creds auth.Credentials
		if err := json.Unmarshal(ctx.Body(), &creds); err != nil {
			return ctx.JSON(http.StatusBadRequest, httpapi.ErrorBody{Error: err.Error()})
		}
		token := session(ctx)
		if token == "" {
			token = mint()
		}
		c := activity(ctx)
		if err := api.Login(c, commands.LoginInput{Token: token, Credentials: creds}); err != nil {
			return respondError(ctx, err)
		}
		shell, err := views.Shell(c, queries.SessionInput{Token: token})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, httpapi.LoginResponse{Token: token, Shell: shell})
	}))

	r.Post(routes.Logout, router.WrapHandler(func(ctx router.Context) error {
		if err := api.Logout(activity(ctx), commands.LogoutInput{Token: session(ctx)}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.NoContent(http.StatusNoContent)
	}))

	r.Get(routes.Shell, router.WrapHandler(func(ctx router.Context) error {
		return respondShell(ctx, views)
	}))

	r.Post(routes.Tab, router.WrapHandler(func(ctx router.Context) error {
		var payload httpapi.TabRequest
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, httpapi.ErrorBody{Error: err.Error()})
		}
		if err := api.SelectTab(activity(ctx), commands.SelectTabInput{Token: session(ctx), Tab: payload.Tab}); err != nil {
			return respondError(ctx, err)
		}
		return respondShell(ctx, views)
	}))

	r.Get(routes.Section, router.WrapHandler(func(ctx router.Context) error {
		view, err := views.Section(activity(ctx), queries.SectionInput{Token: session(ctx), ID: ctx.Param("id")})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, view)
	}))

	r.Get(routes.Room, router.WrapHandler(func(ctx router.Context) error {
		return respondRoom(ctx, views)
	}))

	r.Post(routes.EnterRoom, router.WrapHandler(func(ctx router.Context) error {
		if err := api.EnterRoom(activity(ctx), commands.RoomInput{Token: session(ctx)}); err != nil {
			return respondError(ctx, err)
		}
		return respondRoom(ctx, views)
	}))

	r.Post(routes.ExitRoom, router.WrapHandler(func(ctx router.Context) error {
		if err := api.ExitRoom(activity(ctx), commands.RoomInput{Token: session(ctx)}); err != nil {
			return respondError(ctx, err)
		}
		return respondShell(ctx, views)
	}))

	r.Post(routes.SelectScreen, router.WrapHandler(func(ctx router.Context) error {
		var payload httpapi.ScreenRequest
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, httpapi.ErrorBody{Error: err.Error()})
		}
		if err := api.SelectScreen(activity(ctx), commands.SelectScreenInput{Token: session(ctx), Screen: payload.Screen}); err != nil {
			return respondError(ctx, err)
		}
		return respondRoom(ctx, views)
	}))

	r.Get(routes.Chat, router.WrapHandler(func(ctx router.Context) error {
		return respondChat(ctx, views)
	}))

	r.Post(routes.OpenChat, router.WrapHandler(func(ctx router.Context) error {
		if err := api.OpenChat(activity(ctx), commands.ChatInput{Token: session(ctx)}); err != nil {
			return respondError(ctx, err)
		}
		return respondChat(ctx, views)
	}))

	r.Post(routes.CloseChat, router.WrapHandler(func(ctx router.Context) error {
		if err := api.CloseChat(activity(ctx), commands.ChatInput{Token: session(ctx)}); err != nil {
			return respondError(ctx, err)
		}
		return respondChat(ctx, views)
	}))

	r.Post(routes.Messages, router.WrapHandler(func(ctx router.Context) error {
		var payload httpapi.MessageRequest
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, httpapi.ErrorBody{Error: err.Error()})
		}
		var reply dashboard.ChatView
		input := commands.SendChatInput{Token: session(ctx), Text: payload.Text, Reply: &reply}
		if err := api.SendChat(activity(ctx), input); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, reply)
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *dashboard.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe(session(ws))
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func respondShell(ctx router.Context, views httpapi.Reader) error {
	shell, err := views.Shell(activity(ctx), queries.SessionInput{Token: session(ctx)})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, shell)
}

func respondRoom(ctx router.Context, views httpapi.Reader) error {
	view, err := views.Room(activity(ctx), queries.SessionInput{Token: session(ctx)})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

func respondChat(ctx router.Context, views httpapi.Reader) error {
	view, err := views.Chat(activity(ctx), queries.SessionInput{Token: session(ctx)})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

// session reads the token the way dashboard.SessionFromRequest does.
func session(ctx router.Context) string {
	if token := ctx.Header(dashboard.SessionHeader); token != "" {
		return token
	}
	return ctx.Query(dashboard.SessionQuery)
}

func activity(ctx router.Context) context.Context {
	return dashboard.ContextWithActivity(ctx.Context(), dashboard.ActivityContext{
		Session: session(ctx),
		Channel: dashboard.ChannelGoRouter,
	})
}

func respondError(ctx router.Context, err error) error {
	return ctx.JSON(httpapi.StatusFor(err), httpapi.ErrorBody{Error: err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Login == "" {
		routes.Login = "/login"
	}
	if routes.LoginAPI == "" {
		routes.LoginAPI = "/api/login"
	}
	if routes.Logout == "" {
		routes.Logout = "/api/logout"
	}
	if routes.Shell == "" {
		routes.Shell = "/api/shell"
	}
	if routes.Tab == "" {
		routes.Tab = "/api/tab"
	}
	if routes.Section == "" {
		routes.Section = "/api/sections/:id"
	}
	if routes.Room == "" {
		routes.Room = "/api/situacao"
	}
	if routes.EnterRoom == "" {
		routes.EnterRoom = "/api/situacao/enter"
	}
	if routes.ExitRoom == "" {
		routes.ExitRoom = "/api/situacao/exit"
	}
	if routes.SelectScreen == "" {
		routes.SelectScreen = "/api/situacao/select"
	}
	if routes.Chat == "" {
		routes.Chat = "/api/chat"
	}
	if routes.OpenChat == "" {
		routes.OpenChat = "/api/chat/open"
	}
	if routes.CloseChat == "" {
		routes.CloseChat = "/api/chat/close"
	}
	if routes.Messages == "" {
		routes.Messages = "/api/chat/messages"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws/situacao"
	}
	return routes
}
