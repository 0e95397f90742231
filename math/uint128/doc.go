// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package uint128 implements unsigned 128-bit integer arithmetic modulo 2^128.

Values are represented as a pair of 64-bit halves.  Addition and
multiplication wrap on overflow, which makes the type suitable for linear
congruential recurrences over a 128-bit modulus.

# Arithmetic Backends

By default the carrying addition and the 64x64->128 partial product are
computed with the math/bits intrinsics, which compile down to single
instructions on most 64-bit targets.  Building with the uint128emulated tag
instead selects a portable implementation that splits each 64-bit half into
32-bit halves and performs schoolbook multiplication using only 64-bit
operations.  Both backends produce bit-identical results.

	go build -tags uint128emulated
*/
package uint128
