// Package inflight collapses repeated triggers of the same user action.
//
// A second tap on "Pay" while the first payment is still running joins the
// first call instead of placing a second order.
package inflight

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Guard tracks in-flight actions by key.
type Guard struct {
	group singleflight.Group

	mu      sync.Mutex
	pending map[string]int
}

func New() *Guard {
	return &Guard{pending: make(map[string]int)}
}

// Do runs fn unless an action with the same key is already running, in
// which case it waits for that action and returns its result. shared is
// true when the result was produced by another caller's fn.
func (g *Guard) Do(key string, fn func() (any, error)) (v any, shared bool, err error) {
	g.mu.Lock()
	g.pending[key]++
	g.mu.Unlock()
	defer func() {
		g.mu.Lock()
		if g.pending[key]--; g.pending[key] <= 0 {
			delete(g.pending, key)
		}
		g.mu.Unlock()
	}()

	ran := false
	v, err, _ = g.group.Do(key, func() (any, error) {
		ran = true
		return fn()
	})
	return v, !ran, err
}

// InFlight reports whether an action with key is currently running.
func (g *Guard) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending[key] > 0
}
