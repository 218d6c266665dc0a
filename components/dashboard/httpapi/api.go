package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/nisiafloresta/painel-bi/components/auth"
	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/dashboard/commands"
	"github.com/nisiafloresta/painel-bi/components/dashboard/queries"
)

// DefaultBasePath is where the panel is mounted when none is configured.
const DefaultBasePath = "/painel"

// Pages renders the HTML surfaces.
type Pages interface {
	RenderLogin(ctx context.Context, token string, out io.Writer) error
	RenderPage(ctx context.Context, token string, out io.Writer) error
}

// EventStream serves the live event transports.
type EventStream interface {
	ServeWebSocket(w http.ResponseWriter, r *http.Request)
	ServeSSE(w http.ResponseWriter, r *http.Request)
}

// Handlers exposes HTTP endpoints backed by shared commands.
type Handlers struct {
	API      Executor
	Views    Reader
	Pages    Pages
	Events   EventStream
	BasePath string
	NewToken func() string
}

// Routes mounts every endpoint under the base path on a new ServeMux.
func (h *Handlers) Routes() *http.ServeMux {
	base := h.base()
	mux := http.NewServeMux()
	if h.Pages != nil {
		mux.HandleFunc("GET "+base, h.HandlePage)
		mux.HandleFunc("GET "+base+"/login", h.HandleLoginPage)
	}
	mux.HandleFunc("POST "+base+"/api/login", h.HandleLogin)
	mux.HandleFunc("POST "+base+"/api/logout", h.HandleLogout)
	mux.HandleFunc("GET "+base+"/api/shell", h.HandleShell)
	mux.HandleFunc("POST "+base+"/api/tab", h.HandleSelectTab)
	mux.HandleFunc("GET "+base+"/api/sections/{id}", h.HandleSection)
	mux.HandleFunc("GET "+base+"/api/situacao", h.HandleRoom)
	mux.HandleFunc("POST "+base+"/api/situacao/enter", h.HandleEnterRoom)
	mux.HandleFunc("POST "+base+"/api/situacao/exit", h.HandleExitRoom)
	mux.HandleFunc("POST "+base+"/api/situacao/select", h.HandleSelectScreen)
	mux.HandleFunc("GET "+base+"/api/chat", h.HandleChat)
	mux.HandleFunc("POST "+base+"/api/chat/open", h.HandleOpenChat)
	mux.HandleFunc("POST "+base+"/api/chat/close", h.HandleCloseChat)
	mux.HandleFunc("POST "+base+"/api/chat/messages", h.HandleSendChat)
	if h.Events != nil {
		mux.HandleFunc("GET "+base+"/ws/situacao", h.Events.ServeWebSocket)
		mux.HandleFunc("GET "+base+"/events", h.Events.ServeSSE)
	}
	return mux
}

func (h *Handlers) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Pages.RenderLogin(requestContext(r), dashboard.SessionFromRequest(r), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *Handlers) HandlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := h.Pages.RenderPage(requestContext(r), dashboard.SessionFromRequest(r), &buf)
	if errors.Is(err, dashboard.ErrUnauthenticated) {
		http.Redirect(w, r, h.base()+"/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), StatusFor(err))
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *Handlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var creds auth.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	token := dashboard.SessionFromRequest(r)
	if token == "" {
		token = h.mint()
	}
	ctx := requestContext(r)
	if err := h.API.Login(ctx, commands.LoginInput{Token: token, Credentials: creds}); err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	shell, err := h.Views.Shell(ctx, queries.SessionInput{Token: token})
	if err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, Shell: shell})
}

func (h *Handlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := dashboard.SessionFromRequest(r)
	if err := h.API.Logout(requestContext(r), commands.LogoutInput{Token: token}); err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleShell(w http.ResponseWriter, r *http.Request) {
	h.respondShell(w, r, dashboard.SessionFromRequest(r))
}

func (h *Handlers) HandleSelectTab(w http.ResponseWriter, r *http.Request) {
	var payload TabRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	token := dashboard.SessionFromRequest(r)
	if err := h.API.SelectTab(requestContext(r), commands.SelectTabInput{Token: token, Tab: payload.Tab}); err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	h.respondShell(w, r, token)
}

func (h *Handlers) HandleSection(w http.ResponseWriter, r *http.Request) {
	view, err := h.Views.Section(requestContext(r), queries.SectionInput{
		Token: dashboard.SessionFromRequest(r),
		ID:    r.PathValue("id"),
	})
	if err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) HandleRoom(w http.ResponseWriter, r *http.Request) {
	h.respondRoom(w, r, dashboard.SessionFromRequest(r))
}

func (h *Handlers) HandleEnterRoom(w http.ResponseWriter, r *http.Request) {
	token := dashboard.SessionFromRequest(r)
	if err := h.API.EnterRoom(requestContext(r), commands.RoomInput{Token: token}); err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	h.respondRoom(w, r, token)
}

func (h *Handlers) HandleExitRoom(w http.ResponseWriter, r *http.Request) {
	token := dashboard.SessionFromRequest(r)
	if err := h.API.ExitRoom(requestContext(r), commands.RoomInput{Token: token}); err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	h.respondShell(w, r, token)
}

func (h *Handlers) HandleSelectScreen(w http.ResponseWriter, r *http.Request) {
	var payload ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	token := dashboard.SessionFromRequest(r)
	if err := h.API.SelectScreen(requestContext(r), commands.SelectScreenInput{Token: token, Screen: payload.Screen}); err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	h.respondRoom(w, r, token)
}

func (h *Handlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	h.respondChat(w, r, dashboard.SessionFromRequest(r))
}

func (h *Handlers) HandleOpenChat(w http.ResponseWriter, r *http.Request) {
	token := dashboard.SessionFromRequest(r)
	if err := h.API.OpenChat(requestContext(r), commands.ChatInput{Token: token}); err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	h.respondChat(w, r, token)
}

func (h *Handlers) HandleCloseChat(w http.ResponseWriter, r *http.Request) {
	token := dashboard.SessionFromRequest(r)
	if err := h.API.CloseChat(requestContext(r), commands.ChatInput{Token: token}); err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	h.respondChat(w, r, token)
}

// HandleSendChat answers 200 even when the completion failed: the error kind
// travels in the chat view, as the widget shows it inline.
func (h *Handlers) HandleSendChat(w http.ResponseWriter, r *http.Request) {
	var payload MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var reply dashboard.ChatView
	input := commands.SendChatInput{
		Token: dashboard.SessionFromRequest(r),
		Text:  payload.Text,
		Reply: &reply,
	}
	if err := h.API.SendChat(requestContext(r), input); err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handlers) respondShell(w http.ResponseWriter, r *http.Request, token string) {
	shell, err := h.Views.Shell(requestContext(r), queries.SessionInput{Token: token})
	if err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, shell)
}

func (h *Handlers) respondRoom(w http.ResponseWriter, r *http.Request, token string) {
	view, err := h.Views.Room(requestContext(r), queries.SessionInput{Token: token})
	if err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) respondChat(w http.ResponseWriter, r *http.Request, token string) {
	view, err := h.Views.Chat(requestContext(r), queries.SessionInput{Token: token})
	if err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) base() string {
	base := strings.TrimSuffix(h.BasePath, "/")
	if base == "" {
		return DefaultBasePath
	}
	return base
}

func (h *Handlers) mint() string {
	if h.NewToken != nil {
		return h.NewToken()
	}
	return MintToken()
}

func requestContext(r *http.Request) context.Context {
	return dashboard.ContextWithActivity(r.Context(), dashboard.ActivityContext{
		Session: dashboard.SessionFromRequest(r),
		Channel: dashboard.ChannelHTTP,
	})
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorBody{Error: err.Error()})
}
