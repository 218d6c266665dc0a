package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nisiafloresta/painel-bi/components/auth"
	"github.com/nisiafloresta/painel-bi/components/chat"
	"github.com/nisiafloresta/painel-bi/components/situation"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

type manualTicker struct {
	ch chan time.Time
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               {}

type manualTickers struct {
	mu      sync.Mutex
	tickers map[time.Duration][]*manualTicker
}

func newManualTickers() *manualTickers {
	return &manualTickers{tickers: map[time.Duration][]*manualTicker{}}
}

func (m *manualTickers) factory(d time.Duration) situation.Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTicker{ch: make(chan time.Time)}
	m.tickers[d] = append(m.tickers[d], t)
	return t
}

func (m *manualTickers) last(d time.Duration) *manualTicker {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.tickers[d]
	if len(list) == 0 {
		return nil
	}
	return list[len(list)-1]
}

type recordingTelemetry struct {
	mu     sync.Mutex
	events []string
	last   map[string]any
}

func (r *recordingTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	r.last = payload
}

func (r *recordingTelemetry) snapshot() ([]string, map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...), r.last
}

type workspaceFixture struct {
	workspace *Workspace
	hook      *BroadcastHook
	tickers   *manualTickers
	completer *llm.MockClient
	now       time.Time
}

func newWorkspaceFixture(t *testing.T, completer *llm.MockClient) *workspaceFixture {
	t.Helper()
	logger := zerolog.Nop()
	hook := NewBroadcastHook()
	tickers := newManualTickers()
	now := time.Date(2025, time.July, 15, 9, 30, 5, 0, time.UTC)

	service := NewService(Options{RefreshHook: hook, Logger: &logger})
	chatService := chat.NewService(chat.Options{Completer: completer, Logger: &logger})
	workspace, err := NewWorkspace(WorkspaceOptions{
		Service: service,
		Chat:    chatService,
		Room: situation.Options{
			Now:       func() time.Time { return now },
			NewTicker: tickers.factory,
		},
		Logger: &logger,
	})
	require.NoError(t, err)
	t.Cleanup(workspace.Shutdown)
	return &workspaceFixture{
		workspace: workspace,
		hook:      hook,
		tickers:   tickers,
		completer: completer,
		now:       now,
	}
}

func (f *workspaceFixture) login(t *testing.T, token string) {
	t.Helper()
	_, err := f.workspace.Login(context.Background(), token, auth.Credentials{
		Username: auth.FixedUsername,
		Password: auth.FixedPassword,
	})
	require.NoError(t, err)
}
