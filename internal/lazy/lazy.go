// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lazy provides process-wide values that are initialized exactly once
// on first use from any goroutine.
package lazy

import (
	"sync/atomic"

	"github.com/goodcleanfun/random/internal/spinlock"
)

// Global is a lazily initialized value guarded by double-checked locking.
//
// The ready flag is read without the lock on every access.  Only when it is
// observed unset does a caller take the spinlock, check the flag again and,
// if it is still unset, run the init function and publish the flag.  The
// atomic store of the flag happens after initialization and the atomic load
// on the fast path happens before any use of the value, so no caller can
// observe a partially initialized value.
//
// Global only synchronizes initialization.  Concurrent use of the value
// itself requires external synchronization, for example via WithLock.
type Global[T any] struct {
	ready atomic.Bool
	mu    spinlock.Mutex
	inits atomic.Uint32
	init  func(v *T, fromEntropy bool)
	value T
}

// New returns a Global that will be initialized with init on first use.
// fromEntropy reports whether the initializing caller asked for the value to
// be seeded from entropy.
func New[T any](init func(v *T, fromEntropy bool)) *Global[T] {
	return &Global[T]{init: init}
}

// Get returns a pointer to the value, initializing it first if no caller has
// done so yet.  fromEntropy is passed to the init function only by the caller
// that performs the initialization.
func (g *Global[T]) Get(fromEntropy bool) *T {
	if !g.ready.Load() {
		g.initSlow(fromEntropy)
	}
	return &g.value
}

func (g *Global[T]) initSlow(fromEntropy bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ready.Load() {
		return
	}
	if g.inits.Add(1) != 1 {
		panic("lazy: global initialized more than once")
	}
	g.init(&g.value, fromEntropy)
	g.ready.Store(true)
}

// WithLock initializes the value if needed and then calls fn with the value
// while holding the spinlock.  fn must only perform a small, bounded amount
// of work.
func (g *Global[T]) WithLock(fromEntropy bool, fn func(v *T)) {
	v := g.Get(fromEntropy)
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(v)
}

// Ready reports whether the value has been initialized.
func (g *Global[T]) Ready() bool {
	return g.ready.Load()
}

// Inits returns the number of times the value has been initialized since it
// was created or last reset.  It is never more than one.
func (g *Global[T]) Inits() uint32 {
	return g.inits.Load()
}

// Reset returns the global to its uninitialized state so the next access
// initializes it again.  It must not be called concurrently with any other
// use of the value and is intended for tests.
func (g *Global[T]) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	var zero T
	g.value = zero
	g.inits.Store(0)
	g.ready.Store(false)
}
