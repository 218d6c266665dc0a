package dashboard

import (
	"context"
	"fmt"
	"sync"
)

// ShellStore keeps the shell state of each session.
type ShellStore interface {
	Load(ctx context.Context, token string) (ShellState, error)
	Save(ctx context.Context, token string, state ShellState) error
	Delete(ctx context.Context, token string) error
}

// InMemoryShellStore provides a concurrency-safe default store. State lives
// for the lifetime of the process.
type InMemoryShellStore struct {
	mu   sync.RWMutex
	data map[string]ShellState
}

// NewInMemoryShellStore creates an empty shell store.
func NewInMemoryShellStore() *InMemoryShellStore {
	return &InMemoryShellStore{
		data: make(map[string]ShellState),
	}
}

// Load returns the stored state or the logged-out default.
func (s *InMemoryShellStore) Load(_ context.Context, token string) (ShellState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.data[token]; ok {
		return normalizeShell(state), nil
	}
	return NewShellState(), nil
}

// Save persists state for token.
func (s *InMemoryShellStore) Save(_ context.Context, token string, state ShellState) error {
	if token == "" {
		return fmt.Errorf("dashboard: shell store requires a session token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = normalizeShell(state)
	return nil
}

// Delete forgets token. Unknown tokens are ignored.
func (s *InMemoryShellStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, token)
	return nil
}

func normalizeShell(state ShellState) ShellState {
	if !IsTab(state.Tab) {
		state.Tab = DefaultTab
	}
	if !state.Authenticated {
		state.InRoom = false
	}
	return state
}
