package situation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

type fakeTickers struct {
	mu      sync.Mutex
	tickers map[time.Duration]*fakeTicker
}

func newFakeTickers() *fakeTickers {
	return &fakeTickers{tickers: map[time.Duration]*fakeTicker{}}
}

func (f *fakeTickers) factory(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time)}
	f.tickers[d] = t
	return t
}

func (f *fakeTickers) get(d time.Duration) *fakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickers[d]
}

type recorder struct {
	mu    sync.Mutex
	ticks []Tick
}

func (r *recorder) RoomTicked(_ context.Context, tick Tick) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = append(r.ticks, tick)
	return nil
}

func (r *recorder) all() []Tick {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Tick(nil), r.ticks...)
}

type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestRoom(t *testing.T) (*Room, *fakeTickers, *recorder) {
	t.Helper()
	tickers := newFakeTickers()
	rec := &recorder{}
	clock := &steppingClock{now: time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)}
	room := NewRoom(Options{Now: clock.Now, NewTicker: tickers.factory, Notifier: rec})
	return room, tickers, rec
}

func TestRoomRotatesThroughFiveScreens(t *testing.T) {
	room, tickers, _ := newTestRoom(t)
	require.NoError(t, room.Start(context.Background()))
	defer room.Stop()

	rotate := tickers.get(RotateInterval)
	require.NotNil(t, rotate)

	seen := []int{room.Snapshot().Screen.Index}
	for range ScreenCount {
		rotate.ch <- time.Now()
		require.Eventually(t, func() bool {
			return room.Snapshot().Screen.Index == (seen[len(seen)-1]+1)%ScreenCount
		}, time.Second, time.Millisecond)
		seen = append(seen, room.Snapshot().Screen.Index)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 0}, seen)
}

func TestRoomClockTicksUpdateNow(t *testing.T) {
	room, tickers, rec := newTestRoom(t)
	require.NoError(t, room.Start(context.Background()))
	defer room.Stop()

	before := room.Snapshot().Now
	tickers.get(ClockInterval).ch <- time.Now()
	require.Eventually(t, func() bool { return room.Snapshot().Now.After(before) }, time.Second, time.Millisecond)
	assert.Equal(t, 0, room.Snapshot().Screen.Index)

	ticks := rec.all()
	require.GreaterOrEqual(t, len(ticks), 2)
	assert.Equal(t, ReasonStart, ticks[0].Reason)
	assert.Equal(t, ReasonClock, ticks[len(ticks)-1].Reason)
}

func TestRoomStopHaltsTimers(t *testing.T) {
	room, tickers, rec := newTestRoom(t)
	require.NoError(t, room.Start(context.Background()))
	room.Stop()

	assert.True(t, tickers.get(ClockInterval).isStopped())
	assert.True(t, tickers.get(RotateInterval).isStopped())
	assert.False(t, room.Snapshot().Running)

	count := len(rec.all())
	select {
	case tickers.get(RotateInterval).ch <- time.Now():
		t.Fatal("rotation tick consumed after Stop")
	case <-time.After(20 * time.Millisecond):
	}
	assert.Len(t, rec.all(), count)

	room.Stop()
}

func TestRoomStartTwice(t *testing.T) {
	room, _, _ := newTestRoom(t)
	require.NoError(t, room.Start(context.Background()))
	defer room.Stop()
	assert.ErrorIs(t, room.Start(context.Background()), ErrAlreadyRunning)
}

func TestRoomRestartResetsToFirstScreen(t *testing.T) {
	room, _, _ := newTestRoom(t)
	require.NoError(t, room.Start(context.Background()))
	_, err := room.Select(context.Background(), 3)
	require.NoError(t, err)
	room.Stop()

	require.NoError(t, room.Start(context.Background()))
	defer room.Stop()
	assert.Equal(t, 0, room.Snapshot().Screen.Index)
}

func TestRoomSelect(t *testing.T) {
	room, _, rec := newTestRoom(t)
	require.NoError(t, room.Start(context.Background()))
	defer room.Stop()

	state, err := room.Select(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "mapa", state.Screen.Key)
	ticks := rec.all()
	assert.Equal(t, ReasonSelect, ticks[len(ticks)-1].Reason)

	_, err = room.Select(context.Background(), ScreenCount)
	assert.ErrorIs(t, err, ErrUnknownScreen)
	_, err = room.Select(context.Background(), -1)
	assert.ErrorIs(t, err, ErrUnknownScreen)
}

func TestRoomStopsWithContext(t *testing.T) {
	room, tickers, _ := newTestRoom(t)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, room.Start(ctx))
	cancel()
	require.Eventually(t, func() bool { return tickers.get(ClockInterval).isStopped() }, time.Second, time.Millisecond)
	room.Stop()
}

func TestRoomWithRealTickers(t *testing.T) {
	rec := &recorder{}
	room := NewRoom(Options{ClockInterval: 5 * time.Millisecond, RotateInterval: 15 * time.Millisecond, Notifier: rec})
	require.NoError(t, room.Start(context.Background()))
	require.Eventually(t, func() bool { return room.Snapshot().Screen.Index > 0 }, time.Second, time.Millisecond)
	room.Stop()
}
