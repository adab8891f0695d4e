package state

import "sync"

// DispatchFunc sends an action to the next stage of the store.
type DispatchFunc func(Action)

// Middleware wraps the dispatch chain. It may rewrite the action before
// calling next and perform effects after next returns.
type Middleware func(next DispatchFunc) DispatchFunc

// Listener is notified after every reduction.
type Listener func(prev, next State, a Action)

// Store owns the session state. Dispatch calls are serialised; listeners
// and middleware must not call Dispatch themselves.
type Store struct {
	dispatchMu sync.Mutex

	mu        sync.RWMutex
	state     State
	reducer   Reducer
	listeners map[int]Listener
	order     []int
	nextID    int

	dispatch DispatchFunc
}

// NewStore creates a store. Middleware run in the given order, the first
// one seeing the action first.
func NewStore(reducer Reducer, initial State, mw ...Middleware) *Store {
	s := &Store{
		state:     initial,
		reducer:   reducer,
		listeners: make(map[int]Listener),
	}
	d := DispatchFunc(s.reduce)
	for i := len(mw) - 1; i >= 0; i-- {
		d = mw[i](d)
	}
	s.dispatch = d
	return s
}

// Dispatch runs the action through middleware, the reducer and listeners.
func (s *Store) Dispatch(a Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	s.dispatch(a)
}

// GetState returns the current snapshot.
func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers l and returns a function removing it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Store) reduce(a Action) {
	s.mu.Lock()
	prev := s.state
	next := s.reducer(prev, a)
	s.state = next
	ls := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		ls = append(ls, s.listeners[id])
	}
	s.mu.Unlock()

	for _, l := range ls {
		l(prev, next, a)
	}
}
