// Package guard decides whether a protected view may be rendered. It is
// a three-state machine driven entirely by session state: Loading while
// the initial restore is pending, then Authorized or Unauthorized. There
// is no terminal state; every session change re-evaluates the guard, so
// a logout flips an Authorized guard back to Unauthorized.
package guard

import (
	"sync"

	"github.com/dmitrijs2005/rescuemap/internal/session"
)

type State int

const (
	Loading State = iota
	Authorized
	Unauthorized
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Authorized:
		return "authorized"
	case Unauthorized:
		return "unauthorized"
	}
	return "unknown"
}

// Evaluate maps a session snapshot to a guard state. A session that is
// still loading is never Authorized, whatever IsAuthenticated says.
func Evaluate(s session.State) State {
	if s.IsLoading {
		return Loading
	}
	if s.IsAuthenticated {
		return Authorized
	}
	return Unauthorized
}

// Guard tracks the current state by subscribing to a session store.
type Guard struct {
	mu      sync.Mutex
	current State
}

// New builds a Guard seeded from the store's current state and
// re-evaluated on every subsequent change.
func New(store *session.Store) *Guard {
	g := &Guard{current: Evaluate(store.State())}
	store.Subscribe(func(s session.State) {
		g.mu.Lock()
		g.current = Evaluate(s)
		g.mu.Unlock()
	})
	return g
}

// Current returns the present guard state.
func (g *Guard) Current() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}
