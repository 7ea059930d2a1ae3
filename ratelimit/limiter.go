// Package ratelimit implements the fixed-window admission counter the
// discovery search engine gates queries with. One Limiter tracks one
// aggregate window; per-key budgets are the caller's extension point.
package ratelimit

import (
	"errors"
	"sync"
	"time"
)

// ErrLimitExceeded is the kind callers attach to work denied by an
// exhausted window.
var ErrLimitExceeded = errors.New("rate limit exceeded")

// Config sets the window length and the number of admissions allowed
// within one window.
type Config struct {
	Window      time.Duration
	MaxRequests int
}

// Info is a point-in-time view of the limiter state.
type Info struct {
	Remaining int       `json:"remaining"`
	Reset     time.Time `json:"reset"`
	Limit     int       `json:"limit"`
}

// Limiter counts admissions in a fixed window. Resets are lazy: the first
// check after the window has elapsed starts a new one. A denied check
// never mutates state, so the reset decision is made fresh on every call.
// Safe for concurrent use.
type Limiter struct {
	mu          sync.Mutex
	cfg         Config
	count       int
	windowStart time.Time
	now         func() time.Time
}

// New returns a limiter whose window starts now.
func New(cfg Config) *Limiter {
	l := &Limiter{cfg: cfg, now: time.Now}
	l.windowStart = l.now()
	return l
}

// Allow reports whether one more unit of work may be admitted, consuming
// budget when it is.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) >= l.cfg.Window {
		l.windowStart = now
		l.count = 1
		return true
	}
	if l.count < l.cfg.MaxRequests {
		l.count++
		return true
	}
	return false
}

// Info reports the remaining budget, the moment the current window ends,
// and the configured limit. Reading applies the same lazy reset a check
// would, so an elapsed window shows a full budget.
func (l *Limiter) Info() Info {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) >= l.cfg.Window {
		l.windowStart = now
		l.count = 0
	}

	remaining := l.cfg.MaxRequests - l.count
	if remaining < 0 {
		remaining = 0
	}
	return Info{
		Remaining: remaining,
		Reset:     l.windowStart.Add(l.cfg.Window),
		Limit:     l.cfg.MaxRequests,
	}
}
