package guard

import (
	"context"
	"sync"

	striveclient "github.com/strivelabs/striveclient"
)

// Decision is the outcome of one guard evaluation.
type Decision uint8

const (
	// DecisionPending means session state is still unknown: render
	// nothing, neither protected content nor a redirect.
	DecisionPending Decision = iota
	// DecisionAllow means the protected content may render.
	DecisionAllow
	// DecisionRedirect means the guard navigated away (login for
	// anonymous access, home for role mismatch).
	DecisionRedirect
	// DecisionPrompt means the interactive login prompt owns the outcome:
	// render nothing while it settles.
	DecisionPrompt
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionAllow:
		return "allow"
	case DecisionRedirect:
		return "redirect"
	case DecisionPrompt:
		return "prompt"
	}
	return "invalid"
}

// Navigator performs in-app navigation. Navigating to the current route
// must be a no-op, since a guard re-evaluated by unrelated renders will
// repeat its redirect.
type Navigator interface {
	Navigate(route string)
}

// Prompter asks the user whether to go to login. It returns true for
// "login", false for "stay out" (which sends the user home).
type Prompter interface {
	ConfirmLogin(ctx context.Context) bool
}

// Session is the read-only view of session state the guard consumes.
// [*striveclient.Client] satisfies it.
type Session interface {
	Snapshot() (striveclient.State, *striveclient.UserSummary)
	Watch() chan struct{}
	Unwatch(ch chan struct{})
}

// Config selects the guard's policy for one protected view.
type Config struct {
	// Role, when non-empty, is required of the authenticated user;
	// mismatches redirect home.
	Role string
	// PromptOnGuest shows the one-time interactive prompt to anonymous
	// visitors instead of silently redirecting.
	PromptOnGuest bool
	// LoginRoute and HomeRoute default to /login and /.
	LoginRoute string
	HomeRoute  string
}

// Guard gates the rendering of one protected view. Create one per mount:
// the interactive prompt fires at most once per instance, however many
// times the view re-evaluates.
type Guard struct {
	session  Session
	nav      Navigator
	prompter Prompter
	cfg      Config

	promptOnce sync.Once
}

// New creates a guard. nav is required; prompter may be nil, which
// downgrades PromptOnGuest to a silent redirect.
func New(session Session, nav Navigator, prompter Prompter, cfg Config) *Guard {
	if cfg.LoginRoute == "" {
		cfg.LoginRoute = "/login"
	}
	if cfg.HomeRoute == "" {
		cfg.HomeRoute = "/"
	}
	return &Guard{
		session:  session,
		nav:      nav,
		prompter: prompter,
		cfg:      cfg,
	}
}

// Evaluate makes the navigation decision for the current session state.
// It never returns an error: the guard only withholds rendering, allows
// it, or navigates.
func (g *Guard) Evaluate(ctx context.Context) Decision {
	state, user := g.session.Snapshot()
	switch state {
	case striveclient.StateUnknown:
		return DecisionPending
	case striveclient.StateAnonymous:
		if g.cfg.PromptOnGuest && g.prompter != nil {
			g.promptOnce.Do(func() {
				if g.prompter.ConfirmLogin(ctx) {
					g.nav.Navigate(g.cfg.LoginRoute)
				} else {
					g.nav.Navigate(g.cfg.HomeRoute)
				}
			})
			return DecisionPrompt
		}
		g.nav.Navigate(g.cfg.LoginRoute)
		return DecisionRedirect
	}

	if g.cfg.Role != "" && (user == nil || user.Role != g.cfg.Role) {
		g.nav.Navigate(g.cfg.HomeRoute)
		return DecisionRedirect
	}
	return DecisionAllow
}

// WaitResolved blocks until the session leaves StateUnknown or ctx ends.
// A navigation that lands before bootstrap completes waits here instead of
// flashing an anonymous redirect.
func (g *Guard) WaitResolved(ctx context.Context) error {
	ch := g.session.Watch()
	defer g.session.Unwatch(ch)
	for {
		if state, _ := g.session.Snapshot(); state != striveclient.StateUnknown {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
		}
	}
}

// Resolve waits for session resolution and then evaluates. The returned
// decision is never DecisionPending unless ctx ended first.
func (g *Guard) Resolve(ctx context.Context) (Decision, error) {
	if err := g.WaitResolved(ctx); err != nil {
		return DecisionPending, err
	}
	return g.Evaluate(ctx), nil
}
