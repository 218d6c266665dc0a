package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nisiafloresta/painel-bi/components/sections"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
	DefaultTimeout     = 30 * time.Second
)

var errMissingCompleter = errors.New("chat: completer not configured")

// Telemetry records chat events.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

// Options configures the chat Service.
type Options struct {
	Completer   llm.Completer
	Catalog     *sections.Catalog
	Model       string
	MaxTokens   int
	Temperature *float64
	Timeout     time.Duration
	Logger      *zerolog.Logger
	Tracer      trace.Tracer
	Telemetry   Telemetry
}

// Service sends conversations to the completion API.
type Service struct {
	opts   Options
	logger zerolog.Logger
}

// NewService builds a Service with safe defaults.
func NewService(opts Options) *Service {
	if opts.Catalog == nil {
		opts.Catalog = sections.Default()
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Temperature == nil {
		t := DefaultTemperature
		opts.Temperature = &t
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer("github.com/nisiafloresta/painel-bi/components/chat")
	}
	if opts.Telemetry == nil {
		opts.Telemetry = noopTelemetry{}
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Service{opts: opts, logger: logger.With().Str("component", "chat").Logger()}
}

// Catalog exposes the section catalog used for greetings and prompts.
func (s *Service) Catalog() *sections.Catalog {
	return s.opts.Catalog
}

// Open shows the widget of conv for section.
func (s *Service) Open(conv *Conversation, section string) Widget {
	return conv.apply(func(w Widget) Widget { return w.Open(section, s.opts.Catalog) })
}

// Close hides the widget of conv.
func (s *Service) Close(conv *Conversation) Widget {
	return conv.apply(Widget.Close)
}

// Send appends text to conv, asks the completer for a reply and records the
// outcome. Blank text is a no-op. A failed request is classified and shown as
// an assistant message; the returned error is the *CompletionError.
func (s *Service) Send(ctx context.Context, conv *Conversation, text string) (Widget, error) {
	if s.opts.Completer == nil {
		return conv.Snapshot(), errMissingCompleter
	}
	pending, started, err := conv.begin(text)
	if err != nil || !started {
		return pending, err
	}

	ctx, span := s.opts.Tracer.Start(ctx, "chat.send", trace.WithAttributes(
		attribute.String("chat.section", pending.Section),
		attribute.Int("chat.history", len(pending.History)),
	))
	defer span.End()

	reply, err := s.complete(ctx, pending)
	if err != nil {
		classified := Classify(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, classified.Kind.String())
		s.logger.Warn().Err(err).
			Str("kind", classified.Kind.String()).
			Str("section", pending.Section).
			Msg("chat completion failed")
		s.opts.Telemetry.Record(ctx, "chat.message.failed", map[string]any{
			"section": pending.Section,
			"kind":    classified.Kind.String(),
		})
		return conv.apply(func(w Widget) Widget { return w.FailSend(classified) }), classified
	}

	s.opts.Telemetry.Record(ctx, "chat.message.answered", map[string]any{
		"section": pending.Section,
		"history": len(pending.History) + 1,
	})
	return conv.apply(func(w Widget) Widget { return w.CompleteSend(reply) }), nil
}

func (s *Service) complete(ctx context.Context, w Widget) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	reply, err := s.opts.Completer.Complete(ctx, llm.Request{
		System:      s.opts.Catalog.SystemPrompt(w.Section),
		Messages:    w.Transcript(),
		Model:       s.opts.Model,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: *s.opts.Temperature,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", llm.ErrMalformedResponse
	}
	return reply, nil
}

// Conversation guards one widget so a single request can be pending at a time.
type Conversation struct {
	mu     sync.Mutex
	widget Widget
}

// NewConversation starts a closed, empty conversation on section.
func NewConversation(section string) *Conversation {
	return &Conversation{widget: Widget{Section: section}}
}

// Snapshot returns the current widget state.
func (c *Conversation) Snapshot() Widget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.widget.clone()
}

// FollowSection keeps the widget on the active dashboard tab.
func (c *Conversation) FollowSection(section string) Widget {
	return c.apply(func(w Widget) Widget { return w.WithSection(section) })
}

func (c *Conversation) begin(text string) (Widget, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, started, err := c.widget.BeginSend(text)
	if err != nil || !started {
		return c.widget.clone(), false, err
	}
	c.widget = next
	return next.clone(), true, nil
}

func (c *Conversation) apply(fn func(Widget) Widget) Widget {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.widget = fn(c.widget)
	return c.widget.clone()
}
