// Package ratelimit implements the per-source fixed-window counter used by the public API.
package ratelimit

import (
	"sync"
	"time"
)

// Policy is the per-endpoint quota: at most Max admitted requests per Window.
type Policy struct {
	Window  time.Duration
	Max     int
	Message string
}

const (
	defaultMessage = "Too many requests. Please wait before trying again."
	chatMessage    = "Too many requests. Please wait a moment before trying again."
)

var (
	ChatPolicy         = Policy{Window: time.Minute, Max: 10, Message: chatMessage}
	ConsultationPolicy = Policy{Window: time.Hour, Max: 5, Message: defaultMessage}
	NewsletterPolicy   = Policy{Window: time.Hour, Max: 3, Message: defaultMessage}
	UnsubscribePolicy  = Policy{Window: time.Minute, Max: 10, Message: defaultMessage}
)

// Entry is the counter state for one source key.
type Entry struct {
	Count       int
	WindowStart time.Time
}

// Clock returns the current time.
type Clock func() time.Time

// Limiter counts requests per source key in fixed windows.
//
// The count keeps increasing past Max, so a client that keeps retrying stays
// rejected until its window elapses. Entries are never evicted unless Prune is called.
type Limiter struct {
	policy  Policy
	now     Clock
	mu      sync.Mutex
	entries map[string]*Entry
}

// NewLimiter creates a limiter for policy. A nil clock uses time.Now.
func NewLimiter(policy Policy, clock Clock) *Limiter {
	if clock == nil {
		clock = time.Now
	}
	if policy.Message == "" {
		policy.Message = defaultMessage
	}
	return &Limiter{
		policy:  policy,
		now:     clock,
		entries: make(map[string]*Entry),
	}
}

// Policy returns the limiter's quota.
func (l *Limiter) Policy() Policy {
	return l.policy
}

// Allow records one attempt for key and reports whether it is within quota.
func (l *Limiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		entry = &Entry{WindowStart: now}
		l.entries[key] = entry
	}
	if now.Sub(entry.WindowStart) > l.policy.Window {
		entry.Count = 1
		entry.WindowStart = now
	} else {
		entry.Count++
	}
	return entry.Count <= l.policy.Max
}

// Lookup returns a copy of the entry for key.
func (l *Limiter) Lookup(key string) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Prune drops entries whose window has already elapsed and returns how many were removed.
// A pruned key behaves exactly as an expired one on its next request.
func (l *Limiter) Prune() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, entry := range l.entries {
		if now.Sub(entry.WindowStart) > l.policy.Window {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}
