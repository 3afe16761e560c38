package offline

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"rwfw/backend/internal/urlutil"
	"rwfw/backend/pkg/logger"
)

// Manager runs the install, activate and fetch steps against pluggable storage.
type Manager struct {
	cfg     Config
	origin  *url.URL
	storage Storage
	fetcher Fetcher
	clients Clients
}

// NewManager validates cfg.Origin and applies defaults. clients may be nil.
func NewManager(cfg Config, storage Storage, fetcher Fetcher, clients Clients) (*Manager, error) {
	cfg = cfg.withDefaults()
	origin, ok := urlutil.Origin(cfg.Origin)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScope, cfg.Origin)
	}
	return &Manager{
		cfg:     cfg,
		origin:  origin,
		storage: storage,
		fetcher: fetcher,
		clients: clients,
	}, nil
}

func (m *Manager) Config() Config {
	return m.cfg
}

// Install skips waiting and precaches the static shell. The precache is all or
// nothing: if any asset fails to fetch or is not a 2xx response, nothing is stored.
func (m *Manager) Install(ctx context.Context) error {
	if m.clients != nil {
		if err := m.clients.SkipWaiting(ctx); err != nil {
			return fmt.Errorf("skip waiting: %w", err)
		}
	}

	cache, err := m.storage.Open(ctx, m.cfg.Version)
	if err != nil {
		return fmt.Errorf("open cache %s: %w", m.cfg.Version, err)
	}

	type fetched struct {
		key  string
		resp *Response
	}
	responses := make([]fetched, 0, len(m.cfg.Precache))
	for _, p := range m.cfg.Precache {
		u := m.resolve(p)
		resp, err := m.fetcher.Fetch(ctx, Request{Method: http.MethodGet, URL: u.String()})
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrBadPrecache, p, err)
		}
		if !resp.OK() {
			return fmt.Errorf("%w: %s returned %d", ErrBadPrecache, p, resp.Status)
		}
		responses = append(responses, fetched{key: urlutil.StripFragment(u), resp: resp})
	}

	for _, f := range responses {
		if err := cache.Put(ctx, f.key, f.resp.Clone()); err != nil {
			return fmt.Errorf("store %s: %w", f.key, err)
		}
	}

	logger.Info("precache installed", "module", "offline", "action", "install", "resource", m.cfg.Version, "result", "ok", "count", len(responses))
	return nil
}

// Activate deletes every store other than the current version, then claims open pages.
func (m *Manager) Activate(ctx context.Context) error {
	keys, err := m.storage.Keys(ctx)
	if err != nil {
		return fmt.Errorf("list caches: %w", err)
	}
	for _, key := range keys {
		if key == m.cfg.Version {
			continue
		}
		if _, err := m.storage.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete cache %s: %w", key, err)
		}
		logger.Info("stale cache deleted", "module", "offline", "action", "activate", "resource", key, "result", "ok")
	}

	if m.clients != nil {
		if err := m.clients.Claim(ctx); err != nil {
			return fmt.Errorf("claim clients: %w", err)
		}
	}
	return nil
}

// Handle answers an intercepted request. handled is false when the browser should
// perform the request itself: non-GET, unparseable or cross-origin URLs, and API calls.
func (m *Manager) Handle(ctx context.Context, req Request) (resp *Response, handled bool, err error) {
	if req.Method != http.MethodGet {
		return nil, false, nil
	}
	u, err := url.Parse(req.URL)
	if err != nil || !u.IsAbs() {
		return nil, false, nil
	}
	if !urlutil.SameOrigin(u, m.origin) {
		return nil, false, nil
	}
	if strings.HasPrefix(u.Path, m.cfg.APIPrefix) {
		return nil, false, nil
	}

	if req.Mode == ModeNavigate {
		resp, err = m.networkFirst(ctx, req, u)
	} else {
		resp, err = m.cacheFirst(ctx, req, u)
	}
	return resp, true, err
}

func (m *Manager) networkFirst(ctx context.Context, req Request, u *url.URL) (*Response, error) {
	key := urlutil.StripFragment(u)
	resp, err := m.fetcher.Fetch(ctx, req)
	if err == nil {
		m.store(ctx, key, resp)
		return resp, nil
	}

	logger.Debug("navigation offline", "module", "offline", "action", "fetch", "resource", key, "result", "fallback", "error", err)
	if cached, ok, _ := m.storage.Match(ctx, key); ok {
		return cached, nil
	}
	if page, ok, _ := m.storage.Match(ctx, urlutil.StripFragment(m.resolve(m.cfg.OfflinePage))); ok {
		return page, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNoFallback, err)
}

func (m *Manager) cacheFirst(ctx context.Context, req Request, u *url.URL) (*Response, error) {
	key := urlutil.StripFragment(u)
	if cached, ok, _ := m.storage.Match(ctx, key); ok {
		return cached, nil
	}

	resp, err := m.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Status == http.StatusOK && resp.Type == ResponseBasic {
		m.store(ctx, key, resp)
	}
	return resp, nil
}

// store writes a copy of resp into the current store. Failures are logged only.
func (m *Manager) store(ctx context.Context, key string, resp *Response) {
	cache, err := m.storage.Open(ctx, m.cfg.Version)
	if err == nil {
		err = cache.Put(ctx, key, resp.Clone())
	}
	if err != nil {
		logger.Warn("cache write failed", "module", "offline", "action", "store", "resource", key, "result", "failed", "error", err)
	}
}

func (m *Manager) resolve(p string) *url.URL {
	ref, err := url.Parse(p)
	if err != nil {
		return m.origin.JoinPath(p)
	}
	return m.origin.ResolveReference(ref)
}
