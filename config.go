package striveclient

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/strivelabs/striveclient/transport"
)

// Config is the full client configuration. Instances are set up during
// initialization and treated as immutable afterwards; Build clones them.
type Config struct {
	API       APIConfig
	Endpoints EndpointConfig
	Cookies   CookieConfig
	Refresh   RefreshConfig
	Routes    RouteConfig
	Breaker   BreakerConfig
	Metrics   MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig selects the API host and the uniform request timeout.
type APIConfig struct {
	// BaseURL is the single externally-visible host setting, chosen at
	// build or boot time.
	BaseURL string
	// Timeout applies to every request; on expiry the call is treated as
	// unreachable. Defaults to 15s.
	Timeout time.Duration
}

/*
====================================
ENDPOINT CONFIG
====================================
*/

// EndpointConfig holds the consumed REST paths. Paths are matched by
// substring for the refresh exclusion list, so they keep their trailing
// slashes as the API serves them.
type EndpointConfig struct {
	Profile         string
	Login           string
	Register        string
	RegisterRequest string
	RegisterVerify  string
	Logout          string
	Refresh         string
	CSRFToken       string
	ForgotPassword  string
	ResetPassword   string
	SetupValidate   string
	SetupPassword   string
	// Users is the prefix for per-user resources; profile patches go to
	// Users + id + "/".
	Users string
}

/*
====================================
COOKIE CONFIG
====================================
*/

// CookieConfig names the cookies the client reads. The refresh cookie is
// presence-checked only; its value never enters client logic.
type CookieConfig struct {
	CSRF    string
	Refresh string
	Access  string
}

/*
====================================
REFRESH CONFIG
====================================
*/

// RefreshConfig controls the silent-refresh behavior of the transport.
type RefreshConfig struct {
	// Proactive refreshes before sending when the access-token cookie is
	// already expired, avoiding a guaranteed 401 round-trip.
	Proactive bool
	// Leeway widens the expiry check so a token about to lapse mid-flight
	// still triggers the proactive path.
	Leeway time.Duration
	// SkipPaths lists endpoints that must never trigger refresh-and-retry.
	// Empty means "derive from Endpoints": login, registration, logout,
	// refresh itself, the csrf-token fetch, the bootstrap profile fetch,
	// and the password recovery/setup endpoints.
	SkipPaths []string
}

/*
====================================
ROUTE CONFIG
====================================
*/

// RouteConfig is the navigation surface gated by the core.
type RouteConfig struct {
	// Login is the redirect target for unauthenticated access and the
	// hard-redirect target on refresh failure.
	Login string
	// Home is the redirect target for role mismatches and declined
	// prompts.
	Home string
	// PublicTokenRoutes are token-bearing routes (password setup/reset)
	// where bootstrap skips the profile check entirely.
	PublicTokenRoutes []string
}

// BreakerConfig configures the transport circuit breaker.
type BreakerConfig = transport.BreakerOptions

// MetricsConfig toggles in-process metrics collection.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns the configuration [New] starts from. Callers may
// adjust the copy and pass it to [Builder.WithConfig].
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 15 * time.Second,
		},
		Endpoints: EndpointConfig{
			Profile:         "/api/profile/",
			Login:           "/api/login/",
			Register:        "/api/register/",
			RegisterRequest: "/api/register_request/",
			RegisterVerify:  "/api/register_verify/",
			Logout:          "/api/logout/",
			Refresh:         "/api/auth/jwt/refresh/",
			CSRFToken:       "/api/csrf-token/",
			ForgotPassword:  "/api/forgot_password/",
			ResetPassword:   "/api/reset_password/",
			SetupValidate:   "/api/password-setup/validate/",
			SetupPassword:   "/api/password-setup/setup/",
			Users:           "/api/users/",
		},
		Cookies: CookieConfig{
			CSRF:    "csrftoken",
			Refresh: "refresh_token",
			Access:  "access_token",
		},
		Refresh: RefreshConfig{
			Proactive: true,
			Leeway:    10 * time.Second,
		},
		Routes: RouteConfig{
			Login:             "/login",
			Home:              "/",
			PublicTokenRoutes: []string{"/setup-password", "/reset-password"},
		},
		Breaker: BreakerConfig{
			Enabled:             true,
			MaxRequests:         1,
			Timeout:             30 * time.Second,
			ConsecutiveFailures: 5,
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Refresh.SkipPaths = append([]string(nil), cfg.Refresh.SkipPaths...)
	out.Routes.PublicTokenRoutes = append([]string(nil), cfg.Routes.PublicTokenRoutes...)
	return out
}

// skipRefreshPaths returns the configured exclusion list, deriving it from
// the endpoint table when unset.
func (c Config) skipRefreshPaths() []string {
	if len(c.Refresh.SkipPaths) > 0 {
		return c.Refresh.SkipPaths
	}
	e := c.Endpoints
	return []string{
		e.Login,
		e.Register,
		e.RegisterRequest,
		e.RegisterVerify,
		e.Logout,
		e.Refresh,
		e.CSRFToken,
		e.Profile,
		e.ForgotPassword,
		e.ResetPassword,
		e.SetupValidate,
		e.SetupPassword,
	}
}

// Validate checks the configuration for the mistakes that would otherwise
// surface as confusing runtime failures.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("API.BaseURL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.New("API.BaseURL must be an absolute URL")
	}
	if c.API.Timeout <= 0 {
		return errors.New("API.Timeout must be positive")
	}

	required := map[string]string{
		"Endpoints.Profile":   c.Endpoints.Profile,
		"Endpoints.Login":     c.Endpoints.Login,
		"Endpoints.Register":  c.Endpoints.Register,
		"Endpoints.Logout":    c.Endpoints.Logout,
		"Endpoints.Refresh":   c.Endpoints.Refresh,
		"Endpoints.CSRFToken": c.Endpoints.CSRFToken,
		"Endpoints.Users":     c.Endpoints.Users,
	}
	for name, v := range required {
		if v == "" {
			return fmt.Errorf("%s is required", name)
		}
		if !strings.HasPrefix(v, "/") {
			return fmt.Errorf("%s must start with /", name)
		}
	}

	if c.Cookies.CSRF == "" || c.Cookies.Refresh == "" {
		return errors.New("Cookies.CSRF and Cookies.Refresh are required")
	}
	if c.Refresh.Proactive && c.Cookies.Access == "" {
		return errors.New("Refresh.Proactive requires Cookies.Access")
	}
	if c.Refresh.Leeway < 0 {
		return errors.New("Refresh.Leeway must not be negative")
	}
	if c.Routes.Login == "" || c.Routes.Home == "" {
		return errors.New("Routes.Login and Routes.Home are required")
	}
	return nil
}
