// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package spinlock provides a busy-wait mutual exclusion lock for critical
// sections that only perform a constant amount of work.
//
// The zero value is an unlocked Mutex and may be declared statically.  A
// Mutex must not be copied after first use.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// Mutex is a spinning mutual exclusion lock.  Waiters yield the processor
// between acquisition attempts rather than parking, which avoids the cost of
// a context switch when the lock is only ever held briefly.
type Mutex struct {
	state atomic.Uint32
}

// Lock acquires the mutex, spinning until it is available.
func (m *Mutex) Lock() {
	for !m.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

// TryLock attempts to acquire the mutex without spinning and reports whether
// it succeeded.
func (m *Mutex) TryLock() bool {
	return m.state.CompareAndSwap(0, 1)
}

// Unlock releases the mutex.  It panics if the mutex is not locked.
func (m *Mutex) Unlock() {
	if !m.state.CompareAndSwap(1, 0) {
		panic("spinlock: unlock of unlocked mutex")
	}
}
