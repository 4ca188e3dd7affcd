package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// blockedAccountCode is the machine-readable code the API places in error
// bodies for explicitly disabled accounts.
const blockedAccountCode = "account_blocked"

// classifyTransport maps a failure with no HTTP response onto the
// unreachable category so callers can show a connectivity message instead
// of a generic error.
func classifyTransport(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnreachable) {
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return fmt.Errorf("%w: timeout: %w", ErrUnreachable, err)
		}
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	return fmt.Errorf("%w: %w", ErrUnreachable, err)
}

// classifyStatus buckets a non-2xx response into the error taxonomy. The
// raw body rides along on the APIError so validation errors reach callers
// verbatim.
func classifyStatus(status int, body []byte) error {
	return &APIError{
		StatusCode: status,
		Body:       body,
		category:   categoryForStatus(status, body),
	}
}

func categoryForStatus(status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthenticated
	case status == http.StatusForbidden:
		if errorCode(body) == blockedAccountCode {
			return ErrAccountBlocked
		}
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 400 && status < 500:
		return ErrValidation
	default:
		return ErrServerFault
	}
}

func errorCode(body []byte) string {
	var payload struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Code
}
