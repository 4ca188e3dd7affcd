package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/strivelabs/striveclient/internal/cookies"
	"github.com/strivelabs/striveclient/internal/metrics"
)

// silentRefresh exchanges the HttpOnly refresh cookie for a new access
// credential. Concurrent callers share one in-flight refresh through the
// singleflight group: when several requests hit 401 at once, exactly one
// refresh call reaches the server and every waiter observes its outcome.
func (c *Client) silentRefresh(ctx context.Context) error {
	_, err, shared := c.refreshGroup.Do("refresh", func() (any, error) {
		return nil, c.refreshOnce(ctx)
	})
	if shared {
		c.metrics.Inc(metrics.MetricRefreshShared)
	}
	if err != nil {
		c.metrics.Inc(metrics.MetricRefreshFailure)
		return err
	}
	c.metrics.Inc(metrics.MetricRefreshSuccess)
	return nil
}

// refreshOnce posts to the refresh endpoint with no body. The call relies
// entirely on the HttpOnly refresh cookie and bypasses both CSRF decoration
// and the retry path, mirroring how the endpoint sits on the exclusion
// list.
func (c *Client) refreshOnce(ctx context.Context) error {
	u := c.resolve(c.opts.RefreshPath)
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return err
	}
	hreq.Header.Set("Accept", "application/json")

	hresp, err := c.roundTrip(hreq)
	if err != nil {
		return classifyTransport(err)
	}
	defer hresp.Body.Close()

	body, err := io.ReadAll(hresp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnreachable, err)
	}
	if hresp.StatusCode < 200 || hresp.StatusCode >= 300 {
		return classifyStatus(hresp.StatusCode, body)
	}
	return nil
}

// shouldProactivelyRefresh reports whether the access-token cookie carries
// a JWT that has already expired (within the configured leeway) while a
// refresh credential is still present. Requests on the exclusion list never
// trigger it.
func (c *Client) shouldProactivelyRefresh(req *Request) bool {
	if !c.opts.ProactiveRefresh || c.opts.AccessCookie == "" {
		return false
	}
	if c.refreshExcluded(req.Path) {
		return false
	}
	if !cookies.Has(c.jar, c.base, c.opts.RefreshCookie) {
		return false
	}
	return c.accessTokenExpired(time.Now())
}

func (c *Client) accessTokenExpired(now time.Time) bool {
	raw := cookies.Value(c.jar, c.base, c.opts.AccessCookie)
	if raw == "" {
		return false
	}
	var claims jwt.RegisteredClaims
	// Unverified on purpose: the client only peeks at exp to skip a
	// guaranteed 401; the server remains the authority on validity.
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.Time.After(now.Add(c.opts.RefreshLeeway))
}
