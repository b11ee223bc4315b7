package ingest

import (
	"sync"
	"time"
)

// Guard is the first deduplication tier: a small in-process cache that
// absorbs the appliance's burst retransmissions (the device re-pushes the
// same recognition several times within a couple of seconds). The durable
// second tier lives in the reading store and survives restarts; this one
// deliberately does not.
type Guard struct {
	window     time.Duration
	maxEntries int
	now        func() time.Time

	mu   sync.Mutex
	seen map[string]time.Time
}

// NewGuard builds a guard with the given suppression window and cache bound.
func NewGuard(window time.Duration, maxEntries int) *Guard {
	return &Guard{
		window:     window,
		maxEntries: maxEntries,
		now:        time.Now,
		seen:       make(map[string]time.Time),
	}
}

// MarkIfNew records the (userID, readerID) pair and reports whether it was
// new within the suppression window. Check and insert happen under one lock
// so two concurrent deliveries of the same event cannot both pass.
func (g *Guard) MarkIfNew(userID, readerID string) bool {
	key := userID + "\x00" + readerID
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	if at, ok := g.seen[key]; ok && now.Sub(at) < g.window {
		return false
	}
	g.seen[key] = now

	if len(g.seen) > g.maxEntries {
		g.sweepLocked(now)
	}
	return true
}

// sweepLocked drops entries older than the window. Called only when the
// cache outgrows its bound, so steady-state marks stay O(1).
func (g *Guard) sweepLocked(now time.Time) {
	for k, at := range g.seen {
		if now.Sub(at) >= g.window {
			delete(g.seen, k)
		}
	}
}

// Len reports the current cache size. Test hook.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.seen)
}
