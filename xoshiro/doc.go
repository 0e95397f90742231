// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package xoshiro implements the xoshiro256+ generator of Blackman and Vigna
together with double, float and 32-bit word views of its output.

xoshiro256+ keeps 256 bits of state and produces a 64-bit value per step with
a handful of shifts, rotations and exclusive ors.  Its upper bits are of very
high quality, so the float conversions and the word view all take the most
significant bits of each raw value.  The lowest bits may fail linearity tests
and should not be used on their own.

The state must never be all zero.  Seeding expands a single 64-bit seed into
the four state words with splitmix64, which cannot produce the all-zero
state.

Jump and LongJump advance the state by 2^128 and 2^192 steps respectively,
which splits a single seed into non-overlapping streams for parallel use.

This generator is NOT cryptographically secure.  Generator methods are not
safe for concurrent access.
*/
package xoshiro
