package striveclient

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/strivelabs/striveclient/session"
	"github.com/strivelabs/striveclient/transport"
)

// Builder assembles a [Client]. A Builder is single-use: Build succeeds at
// most once per instance.
type Builder struct {
	config     Config
	httpClient *http.Client
	jar        http.CookieJar
	logger     *slog.Logger
	redirector Redirector

	built bool
}

// New creates a Builder preloaded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL overrides just the API host, the one setting almost every
// deployment changes.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithHTTPClient supplies the underlying HTTP client. Its Jar and Timeout
// are overwritten by the builder's jar and the configured timeout.
func (b *Builder) WithHTTPClient(hc *http.Client) *Builder {
	b.httpClient = hc
	return b
}

// WithCookieJar supplies the cookie store standing in for the browser's.
// Defaults to a fresh in-memory jar.
func (b *Builder) WithCookieJar(jar http.CookieJar) *Builder {
	b.jar = jar
	return b
}

// WithLogger supplies the structured logger. Defaults to slog.Default().
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithRedirector supplies the hard-navigation hook invoked when a silent
// refresh fails. Without one, the refresh-failure path still clears the
// session but cannot force navigation.
func (b *Builder) WithRedirector(r Redirector) *Builder {
	b.redirector = r
	return b
}

// WithMetricsEnabled toggles in-process metrics.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles request latency histograms.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration, wires the transport to the session
// store, and returns the ready Client.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	m := NewMetrics(cfg.Metrics)

	tr, err := transport.NewClient(transport.Options{
		BaseURL:          cfg.API.BaseURL,
		Timeout:          cfg.API.Timeout,
		CSRFTokenPath:    cfg.Endpoints.CSRFToken,
		RefreshPath:      cfg.Endpoints.Refresh,
		SkipRefreshPaths: cfg.skipRefreshPaths(),
		CSRFCookie:       cfg.Cookies.CSRF,
		RefreshCookie:    cfg.Cookies.Refresh,
		AccessCookie:     cfg.Cookies.Access,
		ProactiveRefresh: cfg.Refresh.Proactive,
		RefreshLeeway:    cfg.Refresh.Leeway,
		LoginRoute:       cfg.Routes.Login,
		Breaker:          cfg.Breaker,
	}, transport.Deps{
		HTTPClient: b.httpClient,
		Jar:        b.jar,
		Logger:     logger,
		Metrics:    m,
		Redirector: b.redirector,
	})
	if err != nil {
		return nil, err
	}

	store := session.NewStore()
	// The one sanctioned cross-component callback: registered here,
	// deregistered by Client.Close.
	tr.RegisterSessionSink(store)

	b.built = true

	return &Client{
		config:    cfg,
		transport: tr,
		store:     store,
		metrics:   m,
		logger:    logger,
	}, nil
}
