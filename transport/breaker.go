package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/strivelabs/striveclient/internal/metrics"
)

// BreakerOptions configures the transport circuit breaker. Only
// transport-level failures (no response at all) count toward tripping; HTTP
// status errors are delivered responses and never open the breaker.
type BreakerOptions struct {
	Enabled             bool
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

func newBreaker(opts BreakerOptions, logger *slog.Logger, m *metrics.Metrics) *gobreaker.CircuitBreaker {
	if !opts.Enabled {
		return nil
	}
	threshold := opts.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "strive-api",
		MaxRequests: opts.MaxRequests,
		Interval:    opts.Interval,
		Timeout:     opts.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				m.Inc(metrics.MetricBreakerOpen)
			}
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// roundTrip executes an HTTP request, through the breaker when one is
// configured. An open breaker fails fast as unreachable without touching
// the network.
func (c *Client) roundTrip(req *http.Request) (*http.Response, error) {
	if c.breaker == nil {
		return c.http.Do(req)
	}
	v, err := c.breaker.Execute(func() (any, error) {
		return c.http.Do(req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit breaker open", ErrUnreachable)
		}
		return nil, err
	}
	return v.(*http.Response), nil
}
