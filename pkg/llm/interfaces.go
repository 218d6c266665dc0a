// Package llm talks to hosted chat-completion APIs on behalf of the chat
// widget. Clients report failures with the sentinel and typed errors defined
// here so callers can classify them without knowing the provider.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is a single completion call. Messages holds the conversation in
// order, ending with the newest user turn.
type Request struct {
	System      string
	Messages    []Message
	Model       string
	MaxTokens   int
	Temperature float64
}

// Completer produces the assistant reply for a request.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, req Request) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

var (
	// ErrMissingAPIKey is returned before any network call when no key is configured.
	ErrMissingAPIKey = errors.New("llm: api key not configured")
	// ErrMalformedResponse is returned when a successful response carries no reply.
	ErrMalformedResponse = errors.New("llm: malformed completion response")
)

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	Provider string
	Code     int
	Message  string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("llm: %s returned status %d", e.Provider, e.Code)
	}
	return fmt.Sprintf("llm: %s returned status %d: %s", e.Provider, e.Code, e.Message)
}
