package session

// State is the resolution state of the process-wide session record.
type State uint8

const (
	// StateUnknown is the initial state: the bootstrap profile check has
	// not completed yet. Guards must not make allow/deny decisions while
	// the store is in this state.
	StateUnknown State = iota
	// StateAuthenticated means a user is logged in.
	StateAuthenticated
	// StateAnonymous means no user is logged in. This is an expected
	// steady state, never an error.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	}
	return "invalid"
}

// User is the client-side summary of the authenticated principal. It is an
// opaque identity plus a role tag; the server record is authoritative.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`

	// Blocked principals are treated as unauthenticated during bootstrap
	// and surfaced as a distinct error on login.
	Blocked bool `json:"is_blocked"`
}
