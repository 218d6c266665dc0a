package situation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomsArePerSession(t *testing.T) {
	tickers := newFakeTickers()
	recorders := map[string]*recorder{"a": {}, "b": {}}
	rooms := NewRooms(Options{NewTicker: tickers.factory}, func(session string) Notifier {
		return recorders[session]
	})
	defer rooms.StopAll()

	state, err := rooms.Enter("a")
	require.NoError(t, err)
	assert.True(t, state.Running)
	assert.Equal(t, 0, state.Screen.Index)

	_, err = rooms.Enter("b")
	require.NoError(t, err)
	assert.Equal(t, 2, rooms.Len())

	room, ok := rooms.Lookup("a")
	require.True(t, ok)
	_, err = room.Select(t.Context(), 3)
	require.NoError(t, err)

	again, err := rooms.Enter("a")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Screen.Index, "re-entering a running room keeps its screen")

	assert.Len(t, recorders["a"].all(), 2)
	assert.Len(t, recorders["b"].all(), 1)
}

func TestRoomsExitStopsTimers(t *testing.T) {
	tickers := newFakeTickers()
	rooms := NewRooms(Options{NewTicker: tickers.factory}, nil)

	_, err := rooms.Enter("a")
	require.NoError(t, err)
	rooms.Exit("a")

	assert.True(t, tickers.get(ClockInterval).isStopped())
	assert.True(t, tickers.get(RotateInterval).isStopped())
	_, ok := rooms.Lookup("a")
	assert.False(t, ok)

	rooms.Exit("missing")
	rooms.StopAll()
	assert.Zero(t, rooms.Len())
}
