// Package session holds the process-wide authenticated-user record and its
// three-state lifecycle: Unknown (bootstrap pending), Authenticated, and
// Anonymous.
//
// # State machine
//
//	Unknown → Authenticated   bootstrap success, login, register
//	Unknown → Anonymous       bootstrap failure or absence
//	Authenticated → Anonymous logout, blocked-on-bootstrap, refresh failure
//	Anonymous → Authenticated login, register
//
// No transition re-enters Unknown; the loading flag is cleared exactly once.
//
// # Architecture boundaries
//
// This package owns the [Store] and the [User] model. It performs no I/O —
// the striveclient root package orchestrates the HTTP flows that drive the
// transitions, and the transport's refresh-failure path reaches the store
// only through its registered sink.
//
// # What this package must NOT do
//
//   - Import striveclient, transport, or guard (no upward imports).
//   - Issue network calls or read cookies.
//   - Persist the session record anywhere; the durable credential is
//     server-held and out of scope.
package session
