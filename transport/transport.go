package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"

	"github.com/strivelabs/striveclient/internal/cookies"
	"github.com/strivelabs/striveclient/internal/metrics"
	"github.com/strivelabs/striveclient/session"
)

const (
	headerCSRF      = "X-CSRFToken"
	headerRequestID = "X-Request-ID"
)

// SessionSink is the one sanctioned callback from the transport into
// session state. The store registers itself at bind time and deregisters on
// teardown; the transport's refresh-failure path calls Clear and never
// mutates the record directly.
type SessionSink interface {
	Clear()
	SetUser(session.User)
}

// Redirector performs a hard navigation that bypasses in-app routing. The
// transport is the only component permitted to use it, and only when a
// silent refresh fails: the goal is a clean slate, not a route change.
type Redirector interface {
	Redirect(route string)
}

// Options configures the wrapper. Zero values are filled by the root
// package's config defaults; the transport itself does no defaulting beyond
// the HTTP client.
type Options struct {
	BaseURL string
	Timeout time.Duration

	CSRFTokenPath string
	RefreshPath   string
	// SkipRefreshPaths are matched by substring against the request path,
	// mirroring the endpoints that must never trigger a refresh cycle:
	// login, registration, logout, refresh itself, and the bootstrap
	// profile fetch.
	SkipRefreshPaths []string

	CSRFCookie    string
	RefreshCookie string
	AccessCookie  string

	// ProactiveRefresh runs a silent refresh before sending when the
	// access-token cookie is present and already expired, avoiding a
	// guaranteed 401 round-trip. The token is parsed without signature
	// verification; the client never validates server credentials.
	ProactiveRefresh bool
	RefreshLeeway    time.Duration

	LoginRoute string

	Breaker BreakerOptions
}

// Client wraps outbound requests with anti-forgery decoration and the
// single refresh-and-retry recovery path. It is safe for concurrent use.
type Client struct {
	base    *url.URL
	http    *http.Client
	jar     http.CookieJar
	logger  *slog.Logger
	metrics *metrics.Metrics
	breaker *gobreaker.CircuitBreaker
	opts    Options

	refreshGroup singleflight.Group

	sinkMu sync.RWMutex
	sink   SessionSink

	redirector Redirector
}

// Deps are the collaborators injected at construction. Logger and Metrics
// may be nil; Jar defaults to a fresh in-memory cookie jar.
type Deps struct {
	HTTPClient *http.Client
	Jar        http.CookieJar
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Redirector Redirector
}

// NewClient builds the wrapper around deps.HTTPClient (or a default client)
// with the uniform request timeout applied.
func NewClient(opts Options, deps Deps) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.New("base url must be absolute")
	}

	jar := deps.Jar
	if jar == nil {
		jar, err = cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
	}

	hc := deps.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	hc.Jar = jar
	hc.Timeout = opts.Timeout

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		base:       base,
		http:       hc,
		jar:        jar,
		logger:     logger,
		metrics:    deps.Metrics,
		opts:       opts,
		redirector: deps.Redirector,
	}
	c.breaker = newBreaker(opts.Breaker, logger, deps.Metrics)
	return c, nil
}

// RegisterSessionSink installs the session callback. Registered on store
// bind, deregistered with [Client.DeregisterSessionSink] on teardown.
func (c *Client) RegisterSessionSink(sink SessionSink) {
	c.sinkMu.Lock()
	c.sink = sink
	c.sinkMu.Unlock()
}

// DeregisterSessionSink removes the session callback.
func (c *Client) DeregisterSessionSink() {
	c.sinkMu.Lock()
	c.sink = nil
	c.sinkMu.Unlock()
}

// Do sends req with anti-forgery decoration and performs at most one
// refresh-and-retry cycle on an authentication failure. Every other error
// is logged with status and body, then propagated unchanged.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	p := &pending{req: req, id: uuid.NewString()}
	c.metrics.Inc(metrics.MetricRequestSent)

	if c.shouldProactivelyRefresh(req) {
		// A failure here is not fatal: the request proceeds and the 401
		// path below picks up the pieces.
		if err := c.silentRefresh(ctx); err == nil {
			c.metrics.Inc(metrics.MetricProactiveRefresh)
		}
	}

	resp, err := c.send(ctx, p)
	if err == nil {
		return resp, nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		c.logFailure(ctx, p, err)
		return nil, err
	}
	if p.retried || c.refreshExcluded(req.Path) {
		return nil, err
	}
	p.retried = true
	c.metrics.Inc(metrics.MetricAuthRetry)

	if !cookies.Has(c.jar, c.base, c.opts.RefreshCookie) {
		return nil, err
	}
	if rerr := c.silentRefresh(ctx); rerr != nil {
		c.forceLogin(ctx, p)
		return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, rerr)
	}

	resp, err = c.send(ctx, p)
	if err != nil {
		// A second 401 on the retried request propagates; it must not
		// loop back into refresh.
		c.logFailure(ctx, p, err)
		return nil, err
	}
	return resp, nil
}

// DoJSON marshals in (when non-nil) as the request body and unmarshals the
// response body into out (when non-nil).
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	resp, err := c.Do(ctx, &Request{Method: method, Path: path, Body: body})
	if err != nil {
		return err
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send performs one decorated round-trip. It never retries.
func (c *Client) send(ctx context.Context, p *pending) (*Response, error) {
	hreq, err := c.buildHTTPRequest(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := c.attachCSRF(ctx, hreq); err != nil {
		return nil, err
	}

	start := time.Now()
	hresp, err := c.roundTrip(hreq)
	c.metrics.Observe(metrics.MetricRequestLatency, time.Since(start))
	if err != nil {
		c.metrics.Inc(metrics.MetricUnreachable)
		return nil, classifyTransport(err)
	}
	defer hresp.Body.Close()

	body, err := io.ReadAll(hresp.Body)
	if err != nil {
		c.metrics.Inc(metrics.MetricUnreachable)
		return nil, fmt.Errorf("%w: read body: %w", ErrUnreachable, err)
	}

	if hresp.StatusCode >= 200 && hresp.StatusCode < 300 {
		return &Response{
			StatusCode: hresp.StatusCode,
			Header:     hresp.Header,
			Body:       body,
		}, nil
	}
	return nil, classifyStatus(hresp.StatusCode, body)
}

func (c *Client) buildHTTPRequest(ctx context.Context, p *pending) (*http.Request, error) {
	u := c.resolve(p.req.Path)
	if len(p.req.Query) > 0 {
		u.RawQuery = p.req.Query.Encode()
	}

	var body io.Reader
	if len(p.req.Body) > 0 {
		body = bytes.NewReader(p.req.Body)
	}
	hreq, err := http.NewRequestWithContext(ctx, p.req.Method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for k, vs := range p.req.Header {
		for _, v := range vs {
			hreq.Header.Add(k, v)
		}
	}
	hreq.Header.Set("Accept", "application/json")
	if len(p.req.Body) > 0 {
		hreq.Header.Set("Content-Type", "application/json")
	}
	hreq.Header.Set(headerRequestID, p.id)
	return hreq, nil
}

func (c *Client) resolve(path string) *url.URL {
	ref := &url.URL{Path: path}
	return c.base.ResolveReference(ref)
}

func (c *Client) refreshExcluded(path string) bool {
	for _, skip := range c.opts.SkipRefreshPaths {
		if skip != "" && strings.Contains(path, skip) {
			return true
		}
	}
	return false
}

// forceLogin is the refresh-failure terminal path: reset session state
// through the registered sink, then hard-redirect to the login route.
func (c *Client) forceLogin(ctx context.Context, p *pending) {
	c.metrics.Inc(metrics.MetricForcedLogout)
	c.sinkMu.RLock()
	sink := c.sink
	c.sinkMu.RUnlock()
	if sink != nil {
		sink.Clear()
	}
	c.logger.Warn("silent refresh failed, forcing login",
		slog.String("request_id", p.id),
		slog.String("path", p.req.Path),
		slog.String("route", RouteFromContext(ctx)),
	)
	if c.redirector != nil {
		c.redirector.Redirect(c.opts.LoginRoute)
	}
}

func (c *Client) logFailure(ctx context.Context, p *pending, err error) {
	if errors.Is(err, ErrUnreachable) {
		c.logger.Warn("api unreachable",
			slog.String("request_id", p.id),
			slog.String("method", p.req.Method),
			slog.String("path", p.req.Path),
			slog.String("route", RouteFromContext(ctx)),
			slog.Any("error", err),
		)
		return
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.logger.Error("api error",
			slog.String("request_id", p.id),
			slog.String("method", p.req.Method),
			slog.String("path", p.req.Path),
			slog.String("route", RouteFromContext(ctx)),
			slog.Int("status", apiErr.StatusCode),
			slog.String("body", truncate(apiErr.Body, 512)),
		)
		return
	}
	c.logger.Error("request failed",
		slog.String("request_id", p.id),
		slog.String("method", p.req.Method),
		slog.String("path", p.req.Path),
		slog.Any("error", err),
	)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
