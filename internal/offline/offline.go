// Package offline models the site's service worker: a versioned precache of the static
// shell, network-first page loads with an offline fallback, cache-first assets, and
// API calls that always go to the network. It also renders the script browsers install.
package offline

import (
	"context"
	"errors"
	"net/http"
)

const (
	DefaultVersion     = "rwfw-v1"
	DefaultAPIPrefix   = "/api/"
	DefaultOfflinePage = "/offline.html"

	ModeNavigate = "navigate"

	ResponseBasic  = "basic"
	ResponseCORS   = "cors"
	ResponseOpaque = "opaque"
)

// DefaultPrecache is the static shell stored on install.
var DefaultPrecache = []string{
	"/",
	"/styles.css",
	"/scripts.js",
	"/manifest.json",
	"/offline.html",
	"/icons/logo.webp",
	"/icons/root.webp",
	"/icons/root.png",
	"/icons/regulate.webp",
	"/icons/reflect.webp",
	"/icons/restore.webp",
	"/icons/reconnect.webp",
	"/icons/tree-simple.svg",
	"/icons/tree-roots.svg",
	"/favicon.ico",
}

var (
	ErrNetwork      = errors.New("network request failed")
	ErrNoFallback   = errors.New("no cached response or offline page")
	ErrBadPrecache  = errors.New("precache request failed")
	ErrInvalidScope = errors.New("invalid origin")
)

// Config describes one deployment of the cache. Bumping Version on deploy makes the
// next activation drop every older store.
type Config struct {
	Version     string
	Origin      string
	Precache    []string
	APIPrefix   string
	OfflinePage string
}

// DefaultConfig returns the production configuration for origin.
func DefaultConfig(origin string) Config {
	return Config{
		Version:     DefaultVersion,
		Origin:      origin,
		Precache:    append([]string(nil), DefaultPrecache...),
		APIPrefix:   DefaultAPIPrefix,
		OfflinePage: DefaultOfflinePage,
	}
}

func (c Config) withDefaults() Config {
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Precache == nil {
		c.Precache = append([]string(nil), DefaultPrecache...)
	}
	if c.APIPrefix == "" {
		c.APIPrefix = DefaultAPIPrefix
	}
	if c.OfflinePage == "" {
		c.OfflinePage = DefaultOfflinePage
	}
	return c
}

// Request is an intercepted browser request.
type Request struct {
	Method string
	URL    string
	Mode   string
}

// Response is a fetched or cached response. Type follows the browser's response types;
// only same-origin "basic" responses are eligible for the asset cache.
type Response struct {
	Status int
	Type   string
	Header http.Header
	Body   []byte
}

// Clone returns a deep copy so stored and returned responses never share state.
func (r *Response) Clone() *Response {
	if r == nil {
		return nil
	}
	out := &Response{Status: r.Status, Type: r.Type, Header: r.Header.Clone()}
	if r.Body != nil {
		out.Body = append([]byte(nil), r.Body...)
	}
	return out
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r != nil && r.Status >= 200 && r.Status <= 299
}

// Cache is one named store of responses keyed by request URL.
type Cache interface {
	Match(ctx context.Context, key string) (*Response, bool, error)
	Put(ctx context.Context, key string, resp *Response) error
}

// Storage holds the named stores.
type Storage interface {
	Open(ctx context.Context, name string) (Cache, error)
	Keys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) (bool, error)
	// Match searches every store, oldest first.
	Match(ctx context.Context, key string) (*Response, bool, error)
}

// Fetcher performs network requests.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (*Response, error)
}

// Clients controls the worker's lifecycle relative to open pages.
type Clients interface {
	SkipWaiting(ctx context.Context) error
	Claim(ctx context.Context) error
}
