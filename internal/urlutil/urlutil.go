// Package urlutil holds the URL comparisons shared by the offline cache.
package urlutil

import (
	"net/url"
	"strings"
)

// StripFragment returns u as an absolute string without its fragment. Browsers
// never send fragments, so two URLs differing only there name the same resource.
func StripFragment(u *url.URL) string {
	c := *u
	c.Fragment = ""
	c.RawFragment = ""
	return c.String()
}

// SameOrigin reports whether a and b share scheme and host (including port).
func SameOrigin(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) && strings.EqualFold(a.Host, b.Host)
}

// Origin returns the scheme and host of raw, and false if raw is not absolute.
func Origin(raw string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return &url.URL{Scheme: strings.ToLower(u.Scheme), Host: strings.ToLower(u.Host)}, true
}
