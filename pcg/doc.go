// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package pcg implements the PCG32 and PCG64 permuted congruential generators.

Both generators advance a linear congruential state (64 bits for PCG32, 128
bits for PCG64) selected by an odd stream increment, and emit a permutation
of the state held before the step.  PCG32 uses the XSH-RR output function to
produce 32-bit values and PCG64 uses XSL-RR to produce 64-bit values.

The generators are deterministic and reproducible across platforms.  They are
NOT cryptographically secure and must not be used where an attacker may
observe output.

Generators may jump ahead or back by an arbitrary number of steps in
logarithmic time via Advance and Retreat, which makes it cheap to hand out
disjoint slices of a single stream.

Generator methods are not safe for concurrent access.

# Bounds

The bounded methods return a value in [0, bound) with no modulo bias by
rejecting raw draws below (2^W - bound) mod bound.  A bound of zero is an
invalid argument and causes a panic with an Error whose kind is ErrZeroBound.
*/
package pcg
