package llm

import (
	"context"
	"sync"
)

// MockClient implements Completer with scripted replies for tests and
// offline demos. Every request is recorded.
type MockClient struct {
	mu       sync.Mutex
	replies  []string
	err      error
	requests []Request
	block    chan struct{}
}

// NewMockClient replies with the given texts in order, repeating the last one.
func NewMockClient(replies ...string) *MockClient {
	return &MockClient{replies: replies}
}

// FailWith makes every call return err.
func (m *MockClient) FailWith(err error) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// BlockUntil makes calls wait for release (or ctx) before answering.
func (m *MockClient) BlockUntil(release chan struct{}) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.block = release
	return m
}

// Complete returns the next scripted reply.
func (m *MockClient) Complete(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, cloneRequest(req))
	block := m.block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	if len(m.replies) == 0 {
		return "", nil
	}
	reply := m.replies[0]
	if len(m.replies) > 1 {
		m.replies = m.replies[1:]
	}
	return reply, nil
}

// Requests returns the requests received so far.
func (m *MockClient) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	for i, req := range m.requests {
		out[i] = cloneRequest(req)
	}
	return out
}

func cloneRequest(req Request) Request {
	req.Messages = append([]Message(nil), req.Messages...)
	return req
}
