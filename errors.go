package striveclient

import (
	"errors"

	"github.com/strivelabs/striveclient/transport"
)

// Transport categories re-exported so callers match on one package.
var (
	// ErrUnreachable means no response was received: connection failure,
	// timeout, or an open circuit breaker. Shown as "try again later".
	ErrUnreachable = transport.ErrUnreachable
	// ErrUnauthenticated means an expired or absent credential survived
	// the refresh-and-retry path.
	ErrUnauthenticated = transport.ErrUnauthenticated
	// ErrUnauthorized means the principal is known but not permitted.
	ErrUnauthorized = transport.ErrUnauthorized
	// ErrAccountBlocked means the account is explicitly disabled. Always
	// surfaced as its own message, never folded into a generic failure.
	ErrAccountBlocked = transport.ErrAccountBlocked
	// ErrNotFound is the 404 category.
	ErrNotFound = transport.ErrNotFound
	// ErrValidation carries 4xx responses verbatim for field-level
	// display; unwrap with errors.As into [*APIError] for the body.
	ErrValidation = transport.ErrValidation
	// ErrServerFault is the 5xx category.
	ErrServerFault = transport.ErrServerFault
	// ErrCSRFUnavailable means the anti-forgery token could not be read
	// or fetched, so the state-changing request was never sent.
	ErrCSRFUnavailable = transport.ErrCSRFUnavailable
	// ErrRefreshFailed means the silent refresh failed; session state has
	// already been cleared and the hard redirect issued.
	ErrRefreshFailed = transport.ErrRefreshFailed
)

var (
	// ErrUserNotFound maps a 404 from the login endpoint: the address has
	// no account, the caller should check the email or register.
	ErrUserNotFound = errors.New("no account found for this email")
	// ErrInvalidCredentials maps a 401 from the login endpoint.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrLoginFailed is the generic login failure for everything the
	// taxonomy does not name.
	ErrLoginFailed = errors.New("login failed")
	// ErrNotAuthenticated is returned by operations that need a current
	// user (profile updates) while the session is anonymous.
	ErrNotAuthenticated = errors.New("no authenticated session")
)
