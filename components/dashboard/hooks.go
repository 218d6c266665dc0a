package dashboard

import (
	"context"
	"errors"
	"slices"

	"github.com/rs/zerolog"
)

type noopRefreshHook struct{}

func (noopRefreshHook) Publish(context.Context, Event) error { return nil }

// MultiHook publishes to every hook and joins their errors.
type MultiHook []RefreshHook

// Publish satisfies RefreshHook.
func (m MultiHook) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, hook := range m {
		if hook == nil {
			continue
		}
		if err := hook.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogHook writes published events to a logger. The room clock publishes every
// second, so noisy topics can be muted.
type LogHook struct {
	logger zerolog.Logger
	muted  []string
}

// NewLogHook logs every event whose topic is not muted.
func NewLogHook(logger zerolog.Logger, muted ...string) *LogHook {
	return &LogHook{logger: logger.With().Str("component", "events").Logger(), muted: muted}
}

// Publish satisfies RefreshHook.
func (h *LogHook) Publish(_ context.Context, event Event) error {
	if slices.Contains(h.muted, event.Topic) {
		return nil
	}
	h.logger.Debug().Str("topic", event.Topic).Bool("session_bound", event.Session != "").Msg("event published")
	return nil
}
