package session

import (
	"sync"
	"testing"
	"time"
)

func TestNewStoreStartsUnknown(t *testing.T) {
	s := NewStore()

	state, user := s.Snapshot()
	if state != StateUnknown {
		t.Fatalf("expected StateUnknown, got %v", state)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
	if !s.Loading() {
		t.Fatal("expected Loading true before resolution")
	}
	if s.Resolved() {
		t.Fatal("expected Resolved false before resolution")
	}
}

func TestSetUserResolvesAndStoresCopy(t *testing.T) {
	s := NewStore()
	u := User{ID: "u1", Email: "alice@example.com", Name: "Alice", Role: "user"}

	s.SetUser(u)

	state, got := s.Snapshot()
	if state != StateAuthenticated {
		t.Fatalf("expected StateAuthenticated, got %v", state)
	}
	if got == nil || got.ID != "u1" {
		t.Fatalf("expected stored user u1, got %+v", got)
	}
	if !s.Resolved() {
		t.Fatal("expected Resolved after SetUser")
	}

	// Mutating the snapshot must not leak into the store.
	got.Name = "Mallory"
	_, again := s.Snapshot()
	if again.Name != "Alice" {
		t.Fatalf("snapshot mutation leaked into store: %+v", again)
	}
}

func TestClearResolvesToAnonymous(t *testing.T) {
	s := NewStore()
	s.Clear()

	state, user := s.Snapshot()
	if state != StateAnonymous {
		t.Fatalf("expected StateAnonymous, got %v", state)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
	if !s.Resolved() {
		t.Fatal("expected Resolved after Clear")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := NewStore()
	s.SetUser(User{ID: "u1"})

	ch := s.Watch()
	defer s.Unwatch(ch)
	drain(ch)

	s.Clear()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected notification for first Clear")
	}

	// Already anonymous with no user: no transition, no signal.
	s.Clear()
	select {
	case <-ch:
		t.Fatal("unexpected notification for no-op Clear")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchSignalsEveryTransition(t *testing.T) {
	s := NewStore()
	ch := s.Watch()
	defer s.Unwatch(ch)

	s.SetUser(User{ID: "u1"})
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected notification for SetUser")
	}

	s.Clear()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected notification for Clear")
	}
}

func TestSlowWatcherCoalescesInsteadOfBlocking(t *testing.T) {
	s := NewStore()
	ch := s.Watch()
	defer s.Unwatch(ch)

	// Nobody reads ch; mutations must still return.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			s.SetUser(User{ID: "u"})
			s.Clear()
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("mutations blocked on a slow watcher")
	}
}

func TestCloseDropsWatchers(t *testing.T) {
	s := NewStore()
	ch := s.Watch()
	s.Close()

	s.SetUser(User{ID: "u1"})
	select {
	case <-ch:
		t.Fatal("unexpected notification after Close")
	case <-time.After(50 * time.Millisecond):
	}

	// Watch after Close returns an unregistered channel; mutations still work.
	ch2 := s.Watch()
	s.Clear()
	select {
	case <-ch2:
		t.Fatal("unexpected notification on post-Close watch channel")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if worker%2 == 0 {
					s.SetUser(User{ID: "u", Role: "user"})
				} else {
					s.Clear()
				}
				state, user := s.Snapshot()
				if state == StateAuthenticated && user == nil {
					t.Error("authenticated snapshot with nil user")
					return
				}
				if state == StateAnonymous && user != nil {
					t.Error("anonymous snapshot with user set")
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if s.Loading() {
		t.Fatal("store still loading after transitions")
	}
}

func TestStateString(t *testing.T) {
	cases := []struct {
		state State
		want  string
	}{
		{StateUnknown, "unknown"},
		{StateAuthenticated, "authenticated"},
		{StateAnonymous, "anonymous"},
		{State(99), "invalid"},
	}
	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}

func drain(ch chan struct{}) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
