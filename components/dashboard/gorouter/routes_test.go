package gorouter

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	router "github.com/goliatone/go-router"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisiafloresta/painel-bi/components/auth"
	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/dashboard/httpapi"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

func TestRegisterValidatesConfig(t *testing.T) {
	assert.Error(t, Register(Config[struct{}]{}))
}

type stubRenderer struct {
	calls int
}

func (s *stubRenderer) Render(name string, _ any, out ...io.Writer) (string, error) {
	s.calls++
	for _, w := range out {
		_, _ = io.WriteString(w, name)
	}
	return name, nil
}

func mount[T any](t *testing.T, server router.Server[T], pages httpapi.Pages, bus *httpapi.CommandBus, hook *dashboard.BroadcastHook) http.Handler {
	t.Helper()
	require.NoError(t, Register(Config[T]{
		Router:    server.Router(),
		Pages:     pages,
		API:       bus,
		Views:     bus,
		Broadcast: hook,
		NewToken:  func() string { return "minted" },
	}))
	handler, ok := any(server.WrappedRouter()).(http.Handler)
	require.True(t, ok)
	return handler
}

func newHandler(t *testing.T) (http.Handler, *stubRenderer) {
	t.Helper()
	logger := zerolog.Nop()
	hook := dashboard.NewBroadcastHook()
	ws, err := dashboard.Bootstrap(dashboard.BootstrapOptions{
		Completer:   llm.NewMockClient("Temos 30 unidades."),
		RefreshHook: hook,
		Logger:      &logger,
	})
	require.NoError(t, err)
	t.Cleanup(ws.Shutdown)

	renderer := &stubRenderer{}
	pages := dashboard.NewController(dashboard.ControllerOptions{Pages: ws, Renderer: renderer})
	return mount(t, router.NewHTTPServer(), pages, httpapi.NewCommandBus(ws, nil), hook), renderer
}

func call(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(dashboard.SessionHeader, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginFlow(t *testing.T) {
	h, renderer := newHandler(t)

	rec := call(t, h, http.MethodGet, "/painel", "", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/painel/login", rec.Header().Get("Location"))

	rec = call(t, h, http.MethodGet, "/painel/login", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dashboard.LoginTemplate, rec.Body.String())

	rec = call(t, h, http.MethodPost, "/painel/api/login", "", auth.Credentials{Username: "admin", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, h, http.MethodPost, "/painel/api/login", "", auth.Credentials{
		Username: auth.FixedUsername,
		Password: auth.FixedPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var login httpapi.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Equal(t, "minted", login.Token)

	rec = call(t, h, http.MethodGet, "/painel?sessao=minted", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dashboard.PageTemplate, rec.Body.String())
	assert.Equal(t, 2, renderer.calls)
}

func TestRegisterPanelEndpoints(t *testing.T) {
	h, _ := newHandler(t)
	call(t, h, http.MethodPost, "/painel/api/login", "t1", auth.Credentials{
		Username: auth.FixedUsername,
		Password: auth.FixedPassword,
	})

	rec := call(t, h, http.MethodPost, "/painel/api/tab", "t1", httpapi.TabRequest{Tab: "seguranca"})
	require.Equal(t, http.StatusOK, rec.Code)
	var shell dashboard.ShellState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shell))
	assert.Equal(t, "seguranca", shell.Tab)

	rec = call(t, h, http.MethodGet, "/painel/api/sections/educacao", "t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var section dashboard.SectionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &section))
	assert.Equal(t, "educacao", section.ID)

	rec = call(t, h, http.MethodGet, "/painel/api/sections/educacao", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, h, http.MethodPost, "/painel/api/situacao/enter", "t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(t, h, http.MethodPost, "/painel/api/situacao/select", "t1", httpapi.ScreenRequest{Screen: 4})
	require.Equal(t, http.StatusOK, rec.Code)
	var room dashboard.RoomView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &room))
	assert.Equal(t, "seguranca", room.Screen.Key)

	rec = call(t, h, http.MethodPost, "/painel/api/chat/messages", "t1", httpapi.MessageRequest{Text: "Quantas unidades?"})
	require.Equal(t, http.StatusConflict, rec.Code, "chat must be opened first")
	rec = call(t, h, http.MethodPost, "/painel/api/chat/open", "t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(t, h, http.MethodPost, "/painel/api/chat/messages", "t1", httpapi.MessageRequest{Text: "Quantas unidades?"})
	require.Equal(t, http.StatusOK, rec.Code)
	var chat dashboard.ChatView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chat))
	assert.Equal(t, "Temos 30 unidades.", chat.Widget.History[len(chat.Widget.History)-1].Content)

	rec = call(t, h, http.MethodPost, "/painel/api/logout", "t1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDefaultRouteConfigKeepsOverrides(t *testing.T) {
	routes := defaultRouteConfig(RouteConfig{WebSocket: "/eventos"})
	assert.Equal(t, "/eventos", routes.WebSocket)
	assert.Equal(t, "/api/sections/:id", routes.Section)
	assert.Equal(t, "/login", routes.Login)
}
