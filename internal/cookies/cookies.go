package cookies

import (
	"net/http"
	"net/url"
)

// Value returns the value of the named cookie held by jar for base, or ""
// when the cookie is absent. The jar is consulted on every call; values are
// never cached because the server may rotate them between requests.
func Value(jar http.CookieJar, base *url.URL, name string) string {
	if jar == nil || base == nil {
		return ""
	}
	for _, c := range jar.Cookies(base) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// Has reports whether the named cookie is present for base. Callers that
// only need a presence check (the refresh credential) use this so the value
// never leaks into client logic.
func Has(jar http.CookieJar, base *url.URL, name string) bool {
	if jar == nil || base == nil {
		return false
	}
	for _, c := range jar.Cookies(base) {
		if c.Name == name {
			return true
		}
	}
	return false
}
