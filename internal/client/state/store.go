package state

import "sync"

// Dispatcher accepts actions. Store implements it; wrappers such as metrics
// instrumentation decorate it.
type Dispatcher interface {
	Dispatch(action Action) Action
}

// Getter exposes read access to the current state.
type Getter interface {
	GetState() *AppState
}

// Store is the single holder of AppState.
//
// The read-reduce-replace step of Dispatch is serialized under the state
// lock. Subscribers are called after the lock is released, so they may call
// GetState and may dispatch further actions; a nested Dispatch completes,
// notifications included, before the outer notification loop continues.
type Store struct {
	reduce Reducer

	mu          sync.RWMutex
	state       *AppState
	subscribers map[uint64]func()
	nextID      uint64
	disposed    bool
}

// NewStore returns a Store holding preloaded, or the initial state when
// preloaded is nil.
func NewStore(preloaded *AppState) *Store {
	if preloaded == nil {
		preloaded = InitialState()
	}
	return &Store{
		reduce:      Reduce,
		state:       preloaded,
		subscribers: make(map[uint64]func()),
	}
}

// Dispatch reduces action against the current state, replaces it and
// notifies every subscriber before returning. It returns action. After
// Dispose it does nothing.
func (s *Store) Dispatch(action Action) Action {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return action
	}
	s.state = s.reduce(s.state, action)

	subs := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}

	return action
}

// GetState returns the current state. The result must not be modified.
func (s *Store) GetState() *AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called after every dispatch. The returned
// function removes the registration; calling it more than once is harmless.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return func() {}
	}

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Dispose drops all subscribers and stops accepting actions. The last state
// stays readable.
func (s *Store) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	clear(s.subscribers)
}
