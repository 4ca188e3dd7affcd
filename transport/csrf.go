package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/strivelabs/striveclient/internal/cookies"
	"github.com/strivelabs/striveclient/internal/metrics"
)

// attachCSRF decorates state-changing requests with the anti-forgery
// header. The cookie is read fresh on every call because the server may
// rotate it; when absent, a token is fetched from the dedicated endpoint
// and the request fails if that fetch fails. The fetch itself is never
// retried.
func (c *Client) attachCSRF(ctx context.Context, hreq *http.Request) error {
	if !stateChanging(hreq.Method) {
		return nil
	}

	if v := cookies.Value(c.jar, c.base, c.opts.CSRFCookie); v != "" {
		c.metrics.Inc(metrics.MetricCSRFCookieHit)
		hreq.Header.Set(headerCSRF, v)
		return nil
	}

	token, err := c.fetchCSRFToken(ctx)
	if err != nil {
		c.metrics.Inc(metrics.MetricCSRFFetchFailed)
		c.logger.Error("csrf token fetch failed",
			slog.String("path", hreq.URL.Path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", ErrCSRFUnavailable, err)
	}
	c.metrics.Inc(metrics.MetricCSRFFetched)
	hreq.Header.Set(headerCSRF, token)
	return nil
}

// fetchCSRFToken calls the token endpoint directly, outside Do: no CSRF
// decoration (it is a GET) and no refresh-retry.
func (c *Client) fetchCSRFToken(ctx context.Context) (string, error) {
	u := c.resolve(c.opts.CSRFTokenPath)
	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	hreq.Header.Set("Accept", "application/json")

	hresp, err := c.roundTrip(hreq)
	if err != nil {
		return "", classifyTransport(err)
	}
	defer hresp.Body.Close()

	body, err := io.ReadAll(hresp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrUnreachable, err)
	}
	if hresp.StatusCode != http.StatusOK {
		return "", classifyStatus(hresp.StatusCode, body)
	}

	var payload struct {
		CSRFToken string `json:"csrfToken"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode csrf token: %w", err)
	}
	if payload.CSRFToken == "" {
		return "", fmt.Errorf("empty csrf token in response")
	}
	return payload.CSRFToken, nil
}
