package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP derives the source key for a request: the first X-Forwarded-For entry,
// then the socket peer, then "unknown". Its signature matches echo.IPExtractor.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	remote := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(remote); err == nil && host != "" {
		return host
	}
	if remote != "" {
		return remote
	}
	return "unknown"
}
