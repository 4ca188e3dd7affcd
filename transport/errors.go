package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable means no response was received at all: connection
	// failure, timeout, or an open circuit breaker. Callers show a
	// connectivity message, never "invalid credentials".
	ErrUnreachable = errors.New("service unreachable")
	// ErrUnauthenticated is the category for HTTP 401 after the
	// refresh-and-retry path has been exhausted or skipped.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnauthorized is the category for HTTP 403 on an account that is
	// not blocked: the principal is known but not permitted.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAccountBlocked is the category for an explicitly disabled
	// account. It is always surfaced as a distinct condition.
	ErrAccountBlocked = errors.New("account blocked")
	// ErrNotFound is the category for HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrValidation is the category for 4xx responses other than
	// 401/403/404. The response body is preserved verbatim on the
	// [*APIError] for field-level display.
	ErrValidation = errors.New("validation failed")
	// ErrServerFault is the category for 5xx responses.
	ErrServerFault = errors.New("server fault")
	// ErrCSRFUnavailable means the anti-forgery cookie was absent and the
	// fallback token fetch failed. The decorated request is failed, not
	// retried.
	ErrCSRFUnavailable = errors.New("csrf token unavailable")
	// ErrRefreshFailed means the silent refresh call did not produce a new
	// credential. The session has already been cleared and the hard
	// redirect issued by the time callers see it.
	ErrRefreshFailed = errors.New("silent refresh failed")
)

// APIError carries the HTTP status and raw body of a non-2xx response. It
// unwraps to exactly one of the category sentinels above, so callers match
// with errors.Is and dig out the body with errors.As.
type APIError struct {
	StatusCode int
	Body       []byte

	category error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: status %d", e.category, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.category
}
