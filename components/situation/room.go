// Package situation drives the situational room: a full-screen rotation of
// panels with a live clock. All timing runs through injectable tickers so the
// room can be stepped deterministically.
package situation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	ClockInterval  = time.Second
	RotateInterval = 30 * time.Second
)

var (
	ErrAlreadyRunning = errors.New("situation: room already running")
	ErrUnknownScreen  = errors.New("situation: screen out of range")
)

// Screen describes one panel of the rotation.
type Screen struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Screens lists the rotation in display order.
var Screens = []Screen{
	{Index: 0, Key: "visao-geral", Title: "Visão Geral - Saúde Municipal"},
	{Index: 1, Key: "comparativo-mensal", Title: "Comparativo Mensal 2025"},
	{Index: 2, Key: "mapa", Title: "Mapa das Unidades de Saúde"},
	{Index: 3, Key: "desempenho-unidades", Title: "Desempenho por Unidade - Julho 2025"},
	{Index: 4, Key: "seguranca", Title: "Central de Comando - Segurança Pública"},
}

// ScreenCount is the rotation length.
var ScreenCount = len(Screens)

// Reason tells subscribers why the state changed.
type Reason string

const (
	ReasonStart  Reason = "start"
	ReasonClock  Reason = "clock"
	ReasonRotate Reason = "rotate"
	ReasonSelect Reason = "select"
)

// State is a snapshot of the room.
type State struct {
	Running bool      `json:"running"`
	Screen  Screen    `json:"screen"`
	Now     time.Time `json:"now"`
}

// Tick is published on every state change.
type Tick struct {
	Reason Reason `json:"reason"`
	State  State  `json:"state"`
}

// Notifier receives room ticks.
type Notifier interface {
	RoomTicked(ctx context.Context, tick Tick) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, tick Tick) error

func (f NotifierFunc) RoomTicked(ctx context.Context, tick Tick) error { return f(ctx, tick) }

// Ticker is the subset of time.Ticker the room needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

// NewStdTicker wraps time.NewTicker.
func NewStdTicker(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

// Options configures a Room.
type Options struct {
	Now            func() time.Time
	NewTicker      TickerFactory
	ClockInterval  time.Duration
	RotateInterval time.Duration
	Notifier       Notifier
	Logger         *zerolog.Logger
}

// Room owns the clock and rotation timers.
type Room struct {
	opts   Options
	logger zerolog.Logger

	mu      sync.Mutex
	screen  int
	now     time.Time
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRoom builds a stopped room on the first screen.
func NewRoom(opts Options) *Room {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewTicker == nil {
		opts.NewTicker = NewStdTicker
	}
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = ClockInterval
	}
	if opts.RotateInterval <= 0 {
		opts.RotateInterval = RotateInterval
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Room{
		opts:   opts,
		logger: logger.With().Str("component", "situation").Logger(),
		now:    opts.Now(),
	}
}

// Start resets the rotation to the first screen and launches the timers. The
// timers stop when ctx is cancelled or Stop is called.
func (r *Room) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	clock := r.opts.NewTicker(r.opts.ClockInterval)
	rotate := r.opts.NewTicker(r.opts.RotateInterval)
	r.running = true
	r.screen = 0
	r.now = r.opts.Now()
	r.cancel = cancel
	r.done = make(chan struct{})
	tick := Tick{Reason: ReasonStart, State: r.stateLocked()}
	done := r.done
	r.mu.Unlock()

	r.notify(ctx, tick)
	go r.loop(ctx, clock, rotate, done)
	return nil
}

// Stop cancels the timers and waits for them to exit. After Stop returns the
// room neither changes state nor notifies. Calling Stop on a stopped room is
// a no-op.
func (r *Room) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	cancel, done := r.cancel, r.done
	r.running = false
	r.mu.Unlock()

	cancel()
	<-done
}

// Select jumps to screen i.
func (r *Room) Select(ctx context.Context, i int) (State, error) {
	if i < 0 || i >= ScreenCount {
		return r.Snapshot(), ErrUnknownScreen
	}
	r.mu.Lock()
	r.screen = i
	state := r.stateLocked()
	running := r.running
	r.mu.Unlock()

	if running {
		r.notify(ctx, Tick{Reason: ReasonSelect, State: state})
	}
	return state, nil
}

// Snapshot returns the current state.
func (r *Room) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

func (r *Room) loop(ctx context.Context, clock, rotate Ticker, done chan struct{}) {
	defer close(done)
	defer clock.Stop()
	defer rotate.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-clock.C():
			r.advance(ctx, ReasonClock)
		case <-rotate.C():
			r.advance(ctx, ReasonRotate)
		}
	}
}

func (r *Room) advance(ctx context.Context, reason Reason) {
	r.mu.Lock()
	if !r.running || ctx.Err() != nil {
		r.mu.Unlock()
		return
	}
	switch reason {
	case ReasonClock:
		r.now = r.opts.Now()
	case ReasonRotate:
		r.screen = (r.screen + 1) % ScreenCount
	}
	tick := Tick{Reason: reason, State: r.stateLocked()}
	r.mu.Unlock()

	r.notify(ctx, tick)
}

func (r *Room) notify(ctx context.Context, tick Tick) {
	if r.opts.Notifier == nil {
		return
	}
	if err := r.opts.Notifier.RoomTicked(ctx, tick); err != nil {
		r.logger.Warn().Err(err).Str("reason", string(tick.Reason)).Msg("room notification failed")
	}
}

func (r *Room) stateLocked() State {
	return State{Running: r.running, Screen: Screens[r.screen], Now: r.now}
}
