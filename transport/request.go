package transport

import (
	"net/http"
	"net/url"
)

// Request is the wire-independent description of one API call. Keeping the
// body as a byte slice makes the retry path trivial: the original request
// can be re-sent with its original parameters without re-reading a stream.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response is a fully drained API response. The body is read before Do
// returns so that logging and retry never race the connection.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// pending pairs a request with its retry marker and correlation id. The
// marker guarantees at most one refresh-and-retry cycle per original
// request; it lives exactly as long as one Do call.
type pending struct {
	req     *Request
	id      string
	retried bool
}

func stateChanging(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
