package ingest

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock advances only when told to, so window expiry is deterministic.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGuard(window time.Duration, maxEntries int) (*Guard, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)}
	g := NewGuard(window, maxEntries)
	g.now = clock.now
	return g, clock
}

func TestGuard_SuppressesRepeatWithinWindow(t *testing.T) {
	g, clock := newTestGuard(30*time.Second, 1000)

	if !g.MarkIfNew("7", "r1") {
		t.Fatal("first delivery must pass")
	}
	if g.MarkIfNew("7", "r1") {
		t.Fatal("immediate repeat must be suppressed")
	}
	clock.advance(29 * time.Second)
	if g.MarkIfNew("7", "r1") {
		t.Fatal("repeat inside the window must be suppressed")
	}
}

func TestGuard_AllowsAfterWindowExpiry(t *testing.T) {
	g, clock := newTestGuard(30*time.Second, 1000)

	g.MarkIfNew("7", "r1")
	clock.advance(30 * time.Second)
	if !g.MarkIfNew("7", "r1") {
		t.Fatal("delivery after window expiry must pass")
	}
}

func TestGuard_KeyIncludesReader(t *testing.T) {
	g, _ := newTestGuard(30*time.Second, 1000)

	g.MarkIfNew("7", "r1")
	if !g.MarkIfNew("7", "r2") {
		t.Fatal("same face on a different reader is a distinct event")
	}
	if !g.MarkIfNew("8", "r1") {
		t.Fatal("different face on the same reader is a distinct event")
	}
}

func TestGuard_ConcurrentDeliveriesAdmitExactlyOne(t *testing.T) {
	g, _ := newTestGuard(30*time.Second, 1000)

	const workers = 64
	var passed int64
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			if g.MarkIfNew("7", "r1") {
				atomic.AddInt64(&passed, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if passed != 1 {
		t.Fatalf("simultaneous deliveries of one reading: %d passed, want 1", passed)
	}
}

func TestGuard_SweepDropsExpiredEntries(t *testing.T) {
	g, clock := newTestGuard(30*time.Second, 3)

	g.MarkIfNew("1", "r")
	g.MarkIfNew("2", "r")
	g.MarkIfNew("3", "r")
	clock.advance(31 * time.Second)
	// Fourth insert crosses the bound and triggers the sweep; the three
	// expired entries go away.
	g.MarkIfNew("4", "r")
	if got := g.Len(); got != 1 {
		t.Fatalf("cache size after sweep=%d", got)
	}
}

func TestGuard_SweepKeepsFreshEntries(t *testing.T) {
	g, clock := newTestGuard(30*time.Second, 2)

	g.MarkIfNew("1", "r")
	clock.advance(31 * time.Second)
	g.MarkIfNew("2", "r")
	g.MarkIfNew("3", "r")
	if got := g.Len(); got != 2 {
		t.Fatalf("fresh entries must survive the sweep, size=%d", got)
	}
	if g.MarkIfNew("2", "r") || g.MarkIfNew("3", "r") {
		t.Fatal("fresh entries must still suppress repeats")
	}
}
