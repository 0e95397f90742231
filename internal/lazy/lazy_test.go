// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lazy

import (
	"sync"
	"sync/atomic"
	"testing"
)

// TestGetInitializesOnce ensures many goroutines racing on first use cause
// exactly one initialization and all observe the initialized value.
func TestGetInitializesOnce(t *testing.T) {
	const goroutines = 64

	var calls atomic.Int32
	var sawEntropy atomic.Bool
	g := New(func(v *[4]uint64, fromEntropy bool) {
		calls.Add(1)
		sawEntropy.Store(fromEntropy)
		*v = [4]uint64{1, 2, 3, 4}
	})

	var start, wg sync.WaitGroup
	start.Add(1)
	wg.Add(goroutines)
	results := make([][4]uint64, goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			start.Wait()
			results[i] = *g.Get(true)
		}(i)
	}
	start.Done()
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("init called %d times, want 1", n)
	}
	if n := g.Inits(); n != 1 {
		t.Fatalf("Inits() = %d, want 1", n)
	}
	if !sawEntropy.Load() {
		t.Fatal("init did not receive fromEntropy")
	}
	for i, r := range results {
		if r != [4]uint64{1, 2, 3, 4} {
			t.Fatalf("goroutine %d observed uninitialized value %v", i, r)
		}
	}
}

// TestFirstCallerSelectsEntropy ensures only the initializing caller's
// fromEntropy flag is used.
func TestFirstCallerSelectsEntropy(t *testing.T) {
	var got []bool
	g := New(func(v *int, fromEntropy bool) {
		got = append(got, fromEntropy)
	})
	g.Get(false)
	g.Get(true)
	if len(got) != 1 || got[0] {
		t.Fatalf("unexpected init calls: %v", got)
	}
}

// TestReset ensures a reset global initializes again on next use.
func TestReset(t *testing.T) {
	var calls int
	g := New(func(v *int, _ bool) {
		calls++
		*v = calls
	})
	if g.Ready() {
		t.Fatal("new global reports ready")
	}
	if v := *g.Get(false); v != 1 {
		t.Fatalf("first value: got %d, want 1", v)
	}
	if !g.Ready() {
		t.Fatal("global not ready after Get")
	}
	g.Reset()
	if g.Ready() || g.Inits() != 0 {
		t.Fatal("reset global still initialized")
	}
	if v := *g.Get(false); v != 2 {
		t.Fatalf("value after reset: got %d, want 2", v)
	}
}

// TestWithLock ensures WithLock serializes access to the value.
func TestWithLock(t *testing.T) {
	const goroutines = 16
	const iterations = 500

	g := New(func(v *int, _ bool) { *v = 0 })
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				g.WithLock(false, func(v *int) { *v++ })
			}
		}()
	}
	wg.Wait()

	if got, want := *g.Get(false), goroutines*iterations; got != want {
		t.Fatalf("counter: got %d, want %d", got, want)
	}
}
