package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisiafloresta/painel-bi/components/auth"
	"github.com/nisiafloresta/painel-bi/components/chat"
	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/situation"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

type namedRenderer struct{}

func (namedRenderer) Render(name string, _ any, out ...io.Writer) (string, error) {
	for _, w := range out {
		_, _ = io.WriteString(w, "<html>"+name+"</html>")
	}
	return name, nil
}

type fixture struct {
	server *httptest.Server
	ws     *dashboard.Workspace
}

func newFixture(t *testing.T, completer llm.Completer) *fixture {
	t.Helper()
	logger := zerolog.Nop()
	hook := dashboard.NewBroadcastHook()
	ws, err := dashboard.Bootstrap(dashboard.BootstrapOptions{
		Completer:   completer,
		RefreshHook: hook,
		Logger:      &logger,
	})
	require.NoError(t, err)
	t.Cleanup(ws.Shutdown)

	bus := NewCommandBus(ws, nil)
	handlers := &Handlers{
		API:   bus,
		Views: bus,
		Pages: dashboard.NewController(dashboard.ControllerOptions{
			Pages:    ws,
			Renderer: namedRenderer{},
		}),
		Events:   hook,
		NewToken: func() string { return "minted" },
	}
	server := httptest.NewServer(handlers.Routes())
	t.Cleanup(server.Close)
	return &fixture{server: server, ws: ws}
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(dashboard.SessionHeader, token)
	}
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (f *fixture) login(t *testing.T, token string) {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/painel/api/login", token, auth.Credentials{
		Username: auth.FixedUsername,
		Password: auth.FixedPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	f := newFixture(t, llm.NewMockClient("ok"))
	resp := f.do(t, http.MethodPost, "/painel/api/login", "t1", auth.Credentials{Username: "admin", Password: "000000"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decode[ErrorBody](t, resp)
	assert.Equal(t, auth.InvalidCredentialsMessage, body.Error)
}

func TestLoginMintsToken(t *testing.T) {
	f := newFixture(t, llm.NewMockClient("ok"))
	resp := f.do(t, http.MethodPost, "/painel/api/login", "", auth.Credentials{
		Username: auth.FixedUsername,
		Password: auth.FixedPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[LoginResponse](t, resp)
	assert.Equal(t, "minted", body.Token)
	assert.True(t, body.Shell.Authenticated)
	assert.Equal(t, dashboard.DefaultTab, body.Shell.Tab)
}

func TestPageRedirectsWithoutSession(t *testing.T) {
	f := newFixture(t, llm.NewMockClient("ok"))
	resp := f.do(t, http.MethodGet, "/painel", "", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/painel/login", resp.Header.Get("Location"))

	resp = f.do(t, http.MethodGet, "/painel/login", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(html), dashboard.LoginTemplate)
}

func TestPagePicksShellOrRoom(t *testing.T) {
	f := newFixture(t, llm.NewMockClient("ok"))
	f.login(t, "t1")

	resp := f.do(t, http.MethodGet, "/painel?sessao=t1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(html), dashboard.PageTemplate)

	resp = f.do(t, http.MethodPost, "/painel/api/situacao/enter", "t1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	room := decode[dashboard.RoomView](t, resp)
	assert.Equal(t, 0, room.Screen.Index)
	assert.True(t, room.State.Running)

	resp = f.do(t, http.MethodGet, "/painel?sessao=t1", "", nil)
	html, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(html), dashboard.RoomTemplate)
}

func TestTabAndSectionEndpoints(t *testing.T) {
	f := newFixture(t, llm.NewMockClient("ok"))
	f.login(t, "t1")

	resp := f.do(t, http.MethodPost, "/painel/api/tab", "t1", TabRequest{Tab: "socioeconomico"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	shell := decode[dashboard.ShellState](t, resp)
	assert.Equal(t, "socioeconomico", shell.Tab)

	resp = f.do(t, http.MethodGet, "/painel/api/sections/saude", "t1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	section := decode[dashboard.SectionView](t, resp)
	assert.Equal(t, "saude", section.ID)
	assert.NotEmpty(t, section.Cards)

	resp = f.do(t, http.MethodGet, "/painel/api/sections/financas", "t1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/painel/api/sections/saude", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoomEndpoints(t *testing.T) {
	f := newFixture(t, llm.NewMockClient("ok"))
	f.login(t, "t1")

	resp := f.do(t, http.MethodPost, "/painel/api/situacao/select", "t1", ScreenRequest{Screen: 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	f.do(t, http.MethodPost, "/painel/api/situacao/enter", "t1", nil)
	resp = f.do(t, http.MethodPost, "/painel/api/situacao/select", "t1", ScreenRequest{Screen: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	room := decode[dashboard.RoomView](t, resp)
	assert.Equal(t, situation.Screens[3].Key, room.Screen.Key)

	resp = f.do(t, http.MethodPost, "/painel/api/situacao/select", "t1", ScreenRequest{Screen: 7})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/painel/api/situacao/exit", "t1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	shell := decode[dashboard.ShellState](t, resp)
	assert.False(t, shell.InRoom)
}

func TestChatEndpoints(t *testing.T) {
	f := newFixture(t, llm.NewMockClient("A população estimada é de 33.949 habitantes."))
	f.login(t, "t1")

	resp := f.do(t, http.MethodPost, "/painel/api/chat/open", "t1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decode[dashboard.ChatView](t, resp)
	assert.True(t, view.Open)
	assert.NotEmpty(t, view.Suggestions)

	resp = f.do(t, http.MethodPost, "/painel/api/chat/messages", "t1", MessageRequest{Text: "Qual a população?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view = decode[dashboard.ChatView](t, resp)
	require.Len(t, view.Widget.History, 3)
	assert.Contains(t, view.Widget.History[2].Content, "33.949")

	resp = f.do(t, http.MethodPost, "/painel/api/chat/close", "t1", nil)
	view = decode[dashboard.ChatView](t, resp)
	assert.False(t, view.Open)
}

func TestChatFailureStillAnswers200(t *testing.T) {
	completer := llm.NewMockClient().FailWith(&llm.StatusError{Provider: "openai", Code: http.StatusUnauthorized})
	f := newFixture(t, completer)
	f.login(t, "t1")

	resp := f.do(t, http.MethodPost, "/painel/api/chat/messages", "t1", MessageRequest{Text: "Oi"})
	require.Equal(t, http.StatusConflict, resp.StatusCode, "closed widget")
	assert.Contains(t, decode[ErrorBody](t, resp).Error, "closed")

	resp = f.do(t, http.MethodPost, "/painel/api/chat/open", "t1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = f.do(t, http.MethodPost, "/painel/api/chat/messages", "t1", MessageRequest{Text: "Oi"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decode[dashboard.ChatView](t, resp)
	assert.Equal(t, chat.KindAuth.String(), view.Error)
}

func TestLogoutEndsSession(t *testing.T) {
	f := newFixture(t, llm.NewMockClient("ok"))
	f.login(t, "t1")

	resp := f.do(t, http.MethodPost, "/painel/api/logout", "t1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = f.do(t, http.MethodGet, "/painel/api/shell", "t1", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		nil:                          http.StatusOK,
		dashboard.ErrUnauthenticated: http.StatusUnauthorized,
		auth.ErrInvalidCredentials:   http.StatusUnauthorized,
		dashboard.ErrUnknownSection:  http.StatusNotFound,
		situation.ErrUnknownScreen:   http.StatusNotFound,
		dashboard.ErrNotInRoom:       http.StatusConflict,
		chat.ErrRequestInFlight:      http.StatusConflict,
		chat.ErrWidgetClosed:         http.StatusConflict,
		errors.New("boom"):           http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, StatusFor(err), "%v", err)
	}
}
