package striveclient

import (
	"github.com/strivelabs/striveclient/session"
	"github.com/strivelabs/striveclient/transport"
)

// Role tags carried on [UserSummary.Role].
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserSummary is the client-side record of the authenticated principal:
// opaque identity plus role tag and blocked flag.
type UserSummary = session.User

// State is the session resolution state.
type State = session.State

const (
	// StateUnknown is the initial bootstrap-pending state.
	StateUnknown = session.StateUnknown
	// StateAuthenticated means a user is logged in.
	StateAuthenticated = session.StateAuthenticated
	// StateAnonymous means nobody is logged in; an expected steady state.
	StateAnonymous = session.StateAnonymous
)

// Request, Response, and APIError are the transport's request description,
// drained response, and categorized response error, re-exported for
// feature-area callers that go through [Client.Do].
type (
	Request  = transport.Request
	Response = transport.Response
	APIError = transport.APIError
)

// SessionSink is the narrow callback the transport uses to reset session
// state when a silent refresh fails. The session store satisfies it.
type SessionSink = transport.SessionSink

// Redirector performs the hard full-page navigation to the login route.
// Only the transport's refresh-failure path invokes it.
type Redirector = transport.Redirector

// RegisterInput is the payload for [Client.Register] and
// [Client.RequestRegistration].
type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
}

// ProfilePatch is a partial profile update passed to the server verbatim.
type ProfilePatch map[string]any
