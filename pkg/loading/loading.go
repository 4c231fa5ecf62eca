// Package loading tracks outstanding remote calls behind a single busy indicator.
package loading

import "sync/atomic"

// Gauge is a process-wide reference count of in-flight remote calls. Every call
// acquires before dispatch and releases on every exit path, so the indicator
// always returns to idle even when a call fails.
type Gauge struct {
	outstanding atomic.Int64
}

// Acquire registers one in-flight call.
func (g *Gauge) Acquire() {
	g.outstanding.Add(1)
}

// Release unregisters one in-flight call. The count is floored at zero so an
// unpaired release can never drive the indicator negative.
func (g *Gauge) Release() {
	for {
		n := g.outstanding.Load()
		if n == 0 {
			return
		}
		if g.outstanding.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// Busy reports whether any remote call is still in flight.
func (g *Gauge) Busy() bool {
	return g.outstanding.Load() > 0
}

// Outstanding returns the current number of in-flight calls.
func (g *Gauge) Outstanding() int {
	return int(g.outstanding.Load())
}
