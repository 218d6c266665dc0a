package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nisiafloresta/painel-bi/components/auth"
	"github.com/nisiafloresta/painel-bi/components/chat"
	"github.com/nisiafloresta/painel-bi/components/situation"
)

var (
	// ErrUnauthenticated is returned when a token has no open session.
	ErrUnauthenticated = errors.New("dashboard: session required")
	// ErrNotInRoom is returned for room operations outside the situational room.
	ErrNotInRoom = errors.New("dashboard: situational room is not open")

	errMissingService = errors.New("dashboard: workspace requires a dashboard service")
	errMissingChat    = errors.New("dashboard: workspace requires a chat service")
)

// WorkspaceOptions wires the collaborators of a Workspace.
type WorkspaceOptions struct {
	Service       *Service
	Chat          *chat.Service
	Gate          *auth.Gate
	Sessions      *auth.SessionStore
	Shells        ShellStore
	Conversations *chat.Conversations
	Room          situation.Options
	Logger        *zerolog.Logger
}

// Workspace holds per-session UI state and applies shell transitions. It is
// the single entry point used by commands, queries and transports.
type Workspace struct {
	service       *Service
	chat          *chat.Service
	gate          *auth.Gate
	sessions      *auth.SessionStore
	shells        ShellStore
	conversations *chat.Conversations
	rooms         *situation.Rooms
	logger        zerolog.Logger
}

// NewWorkspace validates opts and fills the in-memory defaults.
func NewWorkspace(opts WorkspaceOptions) (*Workspace, error) {
	if opts.Service == nil {
		return nil, errMissingService
	}
	if opts.Chat == nil {
		return nil, errMissingChat
	}
	if opts.Gate == nil {
		opts.Gate = auth.NewGate()
	}
	if opts.Sessions == nil {
		opts.Sessions = auth.NewSessionStore()
	}
	if opts.Shells == nil {
		opts.Shells = NewInMemoryShellStore()
	}
	if opts.Conversations == nil {
		opts.Conversations = chat.NewConversations()
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	if opts.Room.Logger == nil {
		opts.Room.Logger = &logger
	}
	w := &Workspace{
		service:       opts.Service,
		chat:          opts.Chat,
		gate:          opts.Gate,
		sessions:      opts.Sessions,
		shells:        opts.Shells,
		conversations: opts.Conversations,
		logger:        logger.With().Str("component", "workspace").Logger(),
	}
	w.rooms = situation.NewRooms(opts.Room, w.roomNotifier)
	return w, nil
}

func (w *Workspace) roomNotifier(session string) situation.Notifier {
	return situation.NotifierFunc(func(ctx context.Context, tick situation.Tick) error {
		w.service.Publish(ctx, Event{Topic: TopicRoom, Session: session, Payload: tick})
		return nil
	})
}

// Service exposes the dashboard service.
func (w *Workspace) Service() *Service { return w.service }

// Rooms exposes the situational room registry.
func (w *Workspace) Rooms() *situation.Rooms { return w.rooms }

// Shutdown stops every situational room timer.
func (w *Workspace) Shutdown() {
	w.rooms.StopAll()
}

// Login checks creds and binds token to the user. A failed attempt is kept in
// the token's shell state so the login page can show the error; an already
// authenticated token stays signed in.
func (w *Workspace) Login(ctx context.Context, token string, creds auth.Credentials) (ShellState, error) {
	if token == "" {
		return ShellState{}, ErrUnauthenticated
	}
	state, err := w.shells.Load(ctx, token)
	if err != nil {
		return ShellState{}, err
	}
	user, err := w.gate.Authenticate(creds)
	if err != nil {
		state = Reduce(state, Action{Kind: ActionLoginFailed})
		if saveErr := w.shells.Save(ctx, token, state); saveErr != nil {
			return state, saveErr
		}
		w.logger.Info().Str("username", creds.Username).Msg("login rejected")
		return state, err
	}
	w.sessions.Bind(token, user)
	state = Reduce(state, Action{Kind: ActionLoginSucceeded, User: user})
	if err := w.shells.Save(ctx, token, state); err != nil {
		return state, err
	}
	w.service.recordTelemetry(ctx, "dashboard.login", map[string]any{"user_id": user})
	w.service.Publish(ctx, Event{Topic: TopicShell, Session: token, Payload: state})
	return state, nil
}

// Logout ends the session, leaves the situational room and forgets the chat.
func (w *Workspace) Logout(ctx context.Context, token string) error {
	if _, err := w.sessions.Resolve(token); err != nil {
		return ErrUnauthenticated
	}
	w.rooms.Exit(token)
	w.conversations.Drop(token)
	w.sessions.Revoke(token)
	state := Reduce(ShellState{}, Action{Kind: ActionLogout})
	if err := w.shells.Delete(ctx, token); err != nil {
		return err
	}
	w.service.Publish(ctx, Event{Topic: TopicShell, Session: token, Payload: state})
	return nil
}

// Shell returns the session's shell state.
func (w *Workspace) Shell(ctx context.Context, token string) (ShellState, error) {
	_, state, err := w.authorize(ctx, token)
	return state, err
}

// LoginState returns the shell state of token whether or not it is logged in.
func (w *Workspace) LoginState(ctx context.Context, token string) (ShellState, error) {
	if token == "" {
		return NewShellState(), nil
	}
	return w.shells.Load(ctx, token)
}

// SelectTab switches the active section. Unknown ids leave the state as is.
func (w *Workspace) SelectTab(ctx context.Context, token, tab string) (ShellState, error) {
	next, err := w.transition(ctx, token, Action{Kind: ActionSelectTab, Tab: tab})
	if err != nil {
		return next, err
	}
	if conv, ok := w.conversations.Lookup(token); ok {
		conv.FollowSection(next.Tab)
	}
	return next, nil
}

// EnterRoom switches to the situational room and starts its timers.
func (w *Workspace) EnterRoom(ctx context.Context, token string) (RoomView, error) {
	session, _, err := w.authorize(ctx, token)
	if err != nil {
		return RoomView{}, err
	}
	if _, err := w.transition(ctx, token, Action{Kind: ActionEnterRoom}); err != nil {
		return RoomView{}, err
	}
	state, err := w.rooms.Enter(token)
	if err != nil {
		return RoomView{}, err
	}
	return w.roomView(ctx, session, state)
}

// ExitRoom stops the room timers and returns to the dashboard.
func (w *Workspace) ExitRoom(ctx context.Context, token string) (ShellState, error) {
	next, err := w.transition(ctx, token, Action{Kind: ActionExitRoom})
	if err != nil {
		return next, err
	}
	w.rooms.Exit(token)
	return next, nil
}

// SelectScreen jumps the session's room to screen index.
func (w *Workspace) SelectScreen(ctx context.Context, token string, index int) (RoomView, error) {
	session, room, err := w.room(ctx, token)
	if err != nil {
		return RoomView{}, err
	}
	state, err := room.Select(ctx, index)
	if err != nil {
		return RoomView{}, err
	}
	return w.roomView(ctx, session, state)
}

// Room renders the current screen of the session's room.
func (w *Workspace) Room(ctx context.Context, token string) (RoomView, error) {
	session, room, err := w.room(ctx, token)
	if err != nil {
		return RoomView{}, err
	}
	return w.roomView(ctx, session, room.Snapshot())
}

// Section renders section id, or the active tab when id is empty.
func (w *Workspace) Section(ctx context.Context, token, id string) (SectionView, error) {
	session, state, err := w.authorize(ctx, token)
	if err != nil {
		return SectionView{}, err
	}
	if id == "" {
		id = state.Tab
	}
	return w.service.RenderSection(ctx, viewerFor(session), id)
}

// OpenChat shows the chat widget for the active tab.
func (w *Workspace) OpenChat(ctx context.Context, token string) (ChatView, error) {
	_, state, err := w.authorize(ctx, token)
	if err != nil {
		return ChatView{}, err
	}
	conv := w.conversations.Get(token, state.Tab)
	return w.chatView(w.chat.Open(conv, state.Tab), nil), nil
}

// CloseChat hides the chat widget. History is kept.
func (w *Workspace) CloseChat(ctx context.Context, token string) (ChatView, error) {
	_, state, err := w.authorize(ctx, token)
	if err != nil {
		return ChatView{}, err
	}
	conv := w.conversations.Get(token, state.Tab)
	return w.chatView(w.chat.Close(conv), nil), nil
}

// Chat returns the chat widget of the session.
func (w *Workspace) Chat(ctx context.Context, token string) (ChatView, error) {
	_, state, err := w.authorize(ctx, token)
	if err != nil {
		return ChatView{}, err
	}
	conv := w.conversations.Get(token, state.Tab)
	return w.chatView(conv.Snapshot(), nil), nil
}

// SendChat sends text to the assistant. A failed completion is not an error
// here: it is part of the returned view, as the widget shows it.
func (w *Workspace) SendChat(ctx context.Context, token, text string) (ChatView, error) {
	_, state, err := w.authorize(ctx, token)
	if err != nil {
		return ChatView{}, err
	}
	conv := w.conversations.Get(token, state.Tab)
	widget, err := w.chat.Send(ctx, conv, text)
	var failure *chat.CompletionError
	switch {
	case errors.As(err, &failure):
		view := w.chatView(widget, failure)
		w.service.Publish(ctx, Event{Topic: TopicChat, Session: token, Payload: view})
		return view, nil
	case err != nil:
		return w.chatView(widget, nil), err
	}
	view := w.chatView(widget, nil)
	w.service.Publish(ctx, Event{Topic: TopicChat, Session: token, Payload: view})
	return view, nil
}

// Page assembles everything the HTML shell renders for token.
func (w *Workspace) Page(ctx context.Context, token string) (PageView, error) {
	session, state, err := w.authorize(ctx, token)
	if err != nil {
		return PageView{}, err
	}
	conv := w.conversations.Get(token, state.Tab)
	page := PageView{
		Token: token,
		Shell: state,
		Tabs:  w.service.Navigation(state.Tab),
		Chat:  w.chatView(conv.Snapshot(), nil),
	}
	if state.InRoom {
		if room, ok := w.rooms.Lookup(token); ok {
			view, err := w.roomView(ctx, session, room.Snapshot())
			if err != nil {
				return PageView{}, err
			}
			page.Room = &view
			return page, nil
		}
	}
	section, err := w.service.RenderSection(ctx, viewerFor(session), state.Tab)
	if err != nil {
		return PageView{}, err
	}
	page.Section = &section
	return page, nil
}

func (w *Workspace) authorize(ctx context.Context, token string) (auth.Session, ShellState, error) {
	session, err := w.sessions.Resolve(token)
	if err != nil {
		return auth.Session{}, ShellState{}, ErrUnauthenticated
	}
	state, err := w.shells.Load(ctx, token)
	if err != nil {
		return auth.Session{}, ShellState{}, err
	}
	if !state.Authenticated {
		// The session outlived its shell state; rebuild it from the session.
		state = Reduce(state, Action{Kind: ActionLoginSucceeded, User: session.User})
	}
	return session, state, nil
}

func (w *Workspace) transition(ctx context.Context, token string, action Action) (ShellState, error) {
	_, state, err := w.authorize(ctx, token)
	if err != nil {
		return ShellState{}, err
	}
	next := Reduce(state, action)
	if err := w.shells.Save(ctx, token, next); err != nil {
		return state, err
	}
	if next != state {
		w.service.Publish(ctx, Event{Topic: TopicShell, Session: token, Payload: next})
	}
	return next, nil
}

func (w *Workspace) room(ctx context.Context, token string) (auth.Session, *situation.Room, error) {
	session, state, err := w.authorize(ctx, token)
	if err != nil {
		return auth.Session{}, nil, err
	}
	room, ok := w.rooms.Lookup(token)
	if !state.InRoom || !ok {
		return auth.Session{}, nil, ErrNotInRoom
	}
	return session, room, nil
}

func (w *Workspace) roomView(ctx context.Context, session auth.Session, state situation.State) (RoomView, error) {
	screen, err := w.service.RenderScreen(ctx, viewerFor(session), state.Screen.Index)
	if err != nil {
		return RoomView{}, fmt.Errorf("dashboard: render screen: %w", err)
	}
	return RoomView{
		State:   state,
		Clock:   state.Now.Format("15:04:05"),
		Date:    state.Now.Format("02/01/2006"),
		Screens: append([]situation.Screen(nil), situation.Screens...),
		Screen:  screen,
	}, nil
}

func (w *Workspace) chatView(widget chat.Widget, failure *chat.CompletionError) ChatView {
	view := ChatView{
		Widget:      widget,
		Open:        widget.Phase == chat.PhaseOpen,
		Awaiting:    widget.Status == chat.StatusAwaiting,
		Suggestions: widget.Suggestions(w.chat.Catalog()),
	}
	if failure != nil {
		view.Error = failure.Kind.String()
	}
	return view
}

func viewerFor(session auth.Session) ViewerContext {
	return ViewerContext{UserID: session.User, Token: session.Token, Locale: defaultLocale.String()}
}

// RoomView is the situational room as rendered for one session.
type RoomView struct {
	State   situation.State    `json:"state"`
	Clock   string             `json:"clock"`
	Date    string             `json:"date"`
	Screens []situation.Screen `json:"screens"`
	Screen  ScreenView         `json:"screen"`
}

// ChatView is the chat widget plus what the template derives from it.
type ChatView struct {
	Widget      chat.Widget `json:"widget"`
	Open        bool        `json:"open"`
	Awaiting    bool        `json:"awaiting"`
	Suggestions []string    `json:"suggestions"`
	Error       string      `json:"error,omitempty"`
}

// PageView is the full HTML shell model.
type PageView struct {
	Token   string       `json:"-"`
	Shell   ShellState   `json:"shell"`
	Tabs    []TabLink    `json:"tabs"`
	Section *SectionView `json:"section,omitempty"`
	Room    *RoomView    `json:"room,omitempty"`
	Chat    ChatView     `json:"chat"`
}
