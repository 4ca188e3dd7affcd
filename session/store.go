package session

import "sync"

// Store is the single source of truth for "who is logged in". It is created
// in StateUnknown and resolved exactly once by the bootstrap flow; after
// that, login/logout flows move it between StateAuthenticated and
// StateAnonymous. All mutation goes through Store methods; readers get
// copies, never the internal record.
//
// Store is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	state    State
	user     *User
	watchers map[chan struct{}]struct{}
	closed   bool
}

// NewStore creates a Store in StateUnknown.
func NewStore() *Store {
	return &Store{
		state:    StateUnknown,
		watchers: map[chan struct{}]struct{}{},
	}
}

// Snapshot returns the current state and a copy of the current user, or nil
// when no user is set.
func (s *Store) Snapshot() (State, *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return s.state, nil
	}
	u := *s.user
	return s.state, &u
}

// Loading reports whether the store is still in StateUnknown.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateUnknown
}

// Resolved reports whether the bootstrap check has completed.
func (s *Store) Resolved() bool {
	return !s.Loading()
}

// SetUser stores u and moves the store to StateAuthenticated. If the store
// is still unresolved this also clears the loading flag.
func (s *Store) SetUser(u User) {
	s.mu.Lock()
	s.user = &u
	s.state = StateAuthenticated
	s.notifyLocked()
	s.mu.Unlock()
}

// Clear drops the current user and moves the store to StateAnonymous. Clear
// is idempotent and also resolves an unresolved store; bootstrap failure,
// logout, and the transport's refresh-failure callback all land here.
func (s *Store) Clear() {
	s.mu.Lock()
	changed := s.state != StateAnonymous || s.user != nil
	s.user = nil
	s.state = StateAnonymous
	if changed {
		s.notifyLocked()
	}
	s.mu.Unlock()
}

// Watch registers and returns a channel that receives a signal after every
// state transition. The channel has a one-element buffer; a slow watcher
// coalesces signals instead of blocking mutations.
func (s *Store) Watch() chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	if !s.closed {
		s.watchers[ch] = struct{}{}
	}
	s.mu.Unlock()
	return ch
}

// Unwatch removes a channel previously returned by Watch.
func (s *Store) Unwatch(ch chan struct{}) {
	s.mu.Lock()
	delete(s.watchers, ch)
	s.mu.Unlock()
}

// Close drops all watchers. Further mutations are still permitted but no
// longer signalled; the store itself holds no other resources.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.watchers = map[chan struct{}]struct{}{}
	s.mu.Unlock()
}

func (s *Store) notifyLocked() {
	for ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
