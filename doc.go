// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package random provides fast, reproducible, non-cryptographic pseudorandom
numbers backed by the PCG32, PCG64 and xoshiro256+ generators.

Generators can be used in two ways.  Instances from the pcg and xoshiro
packages are owned by the caller and seeded either deterministically or, via
NewPCG32OS, NewPCG64OS and NewXoshiroOS, from operating system entropy.
Alternatively the package level functions such as Uint32, Uint64N and Float64
draw from process-wide generators that are created on first use.

# Global Generators

Each global generator is initialized exactly once, by whichever goroutine
first uses it.  The draw functions seed it from entropy as part of that
initialization while the seed functions start from the fixed default state
and then apply the provided seed, so

	random.Seed32(123456789, 987654321)
	v := random.Uint32()

yields the same value as drawing from pcg.NewPCG32Seed(123456789, 987654321).

Only initialization is synchronized.  Drawing from or seeding the same global
generator from multiple goroutines at once is a data race and callers that
need that must provide their own locking.

# Security

None of the generators are cryptographically secure.  When the operating
system entropy source is unavailable, seeding silently falls back to a weak
time and address based source as described in the entropy package.

# Bounds

Bounded integer draws panic when given a bound of zero.  The panic value is an
error that matches pcg.ErrZeroBound or xoshiro.ErrZeroBound with errors.Is.
*/
package random
