// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import "time"

// The helpers below draw from the global PCG64 generator and share its
// concurrency caveats.

// Int64 returns a random 63-bit non-negative integer as an int64.
func Int64() int64 {
	return int64(Uint64() & 0x7FFFFFFF_FFFFFFFF)
}

// Int64N returns, as an int64, a random non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int64N(n int64) int64 {
	if n <= 0 {
		panic("random: invalid argument to Int64N")
	}
	return int64(Uint64N(uint64(n)))
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	return int(Uint64N(uint64(n)))
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("random: invalid argument to Duration")
	}
	return time.Duration(Uint64N(uint64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("random: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := n - 1; i > 0; i-- {
		j := int(Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}
