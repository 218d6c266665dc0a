// Package chat implements the assistant widget: an explicit state machine for
// the conversation plus the service that sends it to the completion API.
package chat

import (
	"errors"
	"strings"

	"github.com/nisiafloresta/painel-bi/components/sections"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

var (
	// ErrRequestInFlight is returned when a send is attempted while a reply is
	// still pending. The conversation is left untouched.
	ErrRequestInFlight = errors.New("chat: a request is already in flight")
	// ErrWidgetClosed is returned when a send reaches a widget that is not
	// open. The greeting must be the first message of every conversation.
	ErrWidgetClosed = errors.New("chat: widget is closed")
)

// Phase is the visibility of the widget.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
)

func (p Phase) String() string {
	if p == PhaseOpen {
		return "open"
	}
	return "closed"
}

// Status is the request state of the widget.
type Status int

const (
	StatusIdle Status = iota
	StatusAwaiting
	StatusErrorShown
)

func (s Status) String() string {
	switch s {
	case StatusAwaiting:
		return "awaiting"
	case StatusErrorShown:
		return "error_shown"
	default:
		return "idle"
	}
}

// Message is one entry of the visible history. Failed marks assistant
// entries that carry an error text rather than a reply.
type Message struct {
	Role    llm.Role `json:"role"`
	Content string   `json:"content"`
	Failed  bool     `json:"failed,omitempty"`
}

// Widget is the immutable state of one conversation. Reducers return a new
// value and never modify the receiver's history.
type Widget struct {
	Phase   Phase     `json:"-"`
	Status  Status    `json:"-"`
	Section string    `json:"section"`
	History []Message `json:"history"`
}

// Open shows the widget for section. The greeting is appended only when the
// history is empty, so reopening keeps the conversation as it was.
func (w Widget) Open(section string, catalog *sections.Catalog) Widget {
	next := w.clone()
	next.Phase = PhaseOpen
	next.Section = section
	if next.Status == StatusErrorShown {
		next.Status = StatusIdle
	}
	if len(next.History) == 0 {
		next.History = append(next.History, Message{Role: llm.RoleAssistant, Content: catalog.Greeting(section)})
	}
	return next
}

// Close hides the widget. History and any pending request are kept.
func (w Widget) Close() Widget {
	next := w.clone()
	next.Phase = PhaseClosed
	return next
}

// WithSection follows the active dashboard tab without touching history.
func (w Widget) WithSection(section string) Widget {
	next := w.clone()
	next.Section = section
	return next
}

// BeginSend appends the user's text and moves to awaiting. It reports false
// when the trimmed text is empty, in which case nothing changes. Only an open
// widget accepts text.
func (w Widget) BeginSend(text string) (Widget, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return w, false, nil
	}
	if w.Phase != PhaseOpen {
		return w, false, ErrWidgetClosed
	}
	if w.Status == StatusAwaiting {
		return w, false, ErrRequestInFlight
	}
	next := w.clone()
	next.History = append(next.History, Message{Role: llm.RoleUser, Content: text})
	next.Status = StatusAwaiting
	return next, true, nil
}

// CompleteSend appends the assistant reply and returns to idle.
func (w Widget) CompleteSend(reply string) Widget {
	next := w.clone()
	next.History = append(next.History, Message{Role: llm.RoleAssistant, Content: reply})
	next.Status = StatusIdle
	return next
}

// FailSend appends the classified error text and shows it.
func (w Widget) FailSend(err *CompletionError) Widget {
	next := w.clone()
	next.History = append(next.History, Message{Role: llm.RoleAssistant, Content: err.Kind.Message(), Failed: true})
	next.Status = StatusErrorShown
	return next
}

// ShowSuggestions reports whether the suggested questions are visible: only
// while the greeting is the sole message.
func (w Widget) ShowSuggestions() bool {
	return w.Phase == PhaseOpen && len(w.History) == 1
}

// Suggestions returns the visible suggested questions.
func (w Widget) Suggestions(catalog *sections.Catalog) []string {
	if !w.ShowSuggestions() {
		return []string{}
	}
	return catalog.Suggestions(w.Section)
}

// Transcript is the history as sent upstream. Error texts are left out since
// they never came from the model.
func (w Widget) Transcript() []llm.Message {
	out := make([]llm.Message, 0, len(w.History))
	for _, m := range w.History {
		if m.Failed {
			continue
		}
		out = append(out, llm.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

func (w Widget) clone() Widget {
	w.History = append([]Message(nil), w.History...)
	return w
}
