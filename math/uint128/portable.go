// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint128

// addPortable returns a + b modulo 2^128.  The carry into the high half is 1
// exactly when the low half sum wrapped.
func addPortable(a, b Uint128) Uint128 {
	lo := a.Lo + b.Lo
	var carry uint64
	if lo < b.Lo {
		carry = 1
	}
	return Uint128{Hi: a.Hi + b.Hi + carry, Lo: lo}
}

// mul64Portable returns the full 128-bit product of x and y using four
// 32x32->64 partial products.
func mul64Portable(x, y uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1

	// The low half is plain modular arithmetic.
	lo = x * y

	x0, x1 := x&mask32, x>>32
	y0, y1 := y&mask32, y>>32
	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1 := t & mask32
	w2 := t >> 32
	w1 += x0 * y1
	hi = x1*y1 + w2 + w1>>32
	return hi, lo
}

// mulPortable returns a * b modulo 2^128.  The a.Hi*b.Hi term only
// contributes above bit 128 and is dropped, as is the overflow of the cross
// terms.
func mulPortable(a, b Uint128) Uint128 {
	cross := a.Hi*b.Lo + a.Lo*b.Hi
	hi, lo := mul64Portable(a.Lo, b.Lo)
	return Uint128{Hi: hi + cross, Lo: lo}
}
