package situation

import (
	"context"
	"sync"
)

// Rooms keeps one room per session. Every session watches its own rotation.
type Rooms struct {
	base     Options
	notifier func(session string) Notifier

	mu    sync.Mutex
	rooms map[string]*Room
}

// NewRooms builds a registry whose rooms share base. notifier, when set,
// supplies the notifier of each session's room.
func NewRooms(base Options, notifier func(session string) Notifier) *Rooms {
	return &Rooms{
		base:     base,
		notifier: notifier,
		rooms:    make(map[string]*Room),
	}
}

// Enter starts the session's room on the first screen. Entering a room that
// is already running leaves it untouched.
func (r *Rooms) Enter(session string) (State, error) {
	r.mu.Lock()
	room, ok := r.rooms[session]
	if !ok {
		opts := r.base
		if r.notifier != nil {
			opts.Notifier = r.notifier(session)
		}
		room = NewRoom(opts)
		r.rooms[session] = room
	}
	r.mu.Unlock()

	// Rooms outlive the request that opened them; Exit or StopAll end them.
	if err := room.Start(context.Background()); err != nil && err != ErrAlreadyRunning {
		return room.Snapshot(), err
	}
	return room.Snapshot(), nil
}

// Lookup returns the session's room.
func (r *Rooms) Lookup(session string) (*Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[session]
	return room, ok
}

// Exit stops and forgets the session's room. Unknown sessions are ignored.
func (r *Rooms) Exit(session string) {
	r.mu.Lock()
	room, ok := r.rooms[session]
	delete(r.rooms, session)
	r.mu.Unlock()
	if ok {
		room.Stop()
	}
}

// StopAll stops every room and empties the registry.
func (r *Rooms) StopAll() {
	r.mu.Lock()
	rooms := r.rooms
	r.rooms = make(map[string]*Room)
	r.mu.Unlock()
	for _, room := range rooms {
		room.Stop()
	}
}

// Len reports the number of rooms held.
func (r *Rooms) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}
