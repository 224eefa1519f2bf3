package store

import (
	"sync"

	"github.com/rs/zerolog"

	"grindlog/internal/models"
)

// Listener observes the state after every dispatched action. It runs
// on the dispatching goroutine and receives a private deep copy.
type Listener func(models.AppState)

// Store holds the canonical application state. All mutation goes
// through Dispatch, which funnels every action through one mutex so
// the pure-reducer semantics hold even with multiple callers.
type Store struct {
	mu        sync.Mutex
	state     models.AppState
	listeners []Listener
	log       zerolog.Logger
}

// New creates a store seeded with the given initial state.
func New(initial models.AppState, log zerolog.Logger) *Store {
	return &Store{state: initial, log: log}
}

// Dispatch applies one action atomically and notifies listeners with
// a snapshot of the resulting state.
func (st *Store) Dispatch(action Action) {
	st.mu.Lock()
	st.state = Reduce(st.state, action)
	snapshot := st.state.Clone()
	listeners := st.listeners
	st.mu.Unlock()

	st.log.Debug().Str("action", action.actionName()).Msg("dispatched")
	for _, fn := range listeners {
		fn(snapshot)
	}
}

// Snapshot returns a deep copy of the current state.
func (st *Store) Snapshot() models.AppState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.Clone()
}

// Subscribe registers a listener for future state changes.
func (st *Store) Subscribe(fn Listener) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.listeners = append(st.listeners, fn)
}
