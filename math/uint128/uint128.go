// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint128

import "fmt"

// Uint128 is an unsigned 128-bit integer.  The zero value is 0.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// New returns the value hi*2^64 + lo.
func New(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// From64 returns v as a Uint128.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Add returns n + n2 modulo 2^128.
func (n Uint128) Add(n2 Uint128) Uint128 {
	return add(n, n2)
}

// Mul returns n * n2 modulo 2^128.  Bits of the full product above 2^128
// are discarded.
func (n Uint128) Mul(n2 Uint128) Uint128 {
	return mul(n, n2)
}

// Neg returns the two's complement of n, that is 2^128 - n modulo 2^128.
func (n Uint128) Neg() Uint128 {
	return add(Uint128{Hi: ^n.Hi, Lo: ^n.Lo}, Uint128{Lo: 1})
}

// Lsh returns n shifted left by bits.  Shifts of 128 or more yield zero.
func (n Uint128) Lsh(bits uint) Uint128 {
	switch {
	case bits >= 128:
		return Uint128{}
	case bits >= 64:
		return Uint128{Hi: n.Lo << (bits - 64)}
	case bits == 0:
		return n
	}
	return Uint128{Hi: n.Hi<<bits | n.Lo>>(64-bits), Lo: n.Lo << bits}
}

// Rsh returns n shifted right by bits.  Shifts of 128 or more yield zero.
func (n Uint128) Rsh(bits uint) Uint128 {
	switch {
	case bits >= 128:
		return Uint128{}
	case bits >= 64:
		return Uint128{Lo: n.Hi >> (bits - 64)}
	case bits == 0:
		return n
	}
	return Uint128{Hi: n.Hi >> bits, Lo: n.Lo>>bits | n.Hi<<(64-bits)}
}

// Or returns the bitwise or of n and n2.
func (n Uint128) Or(n2 Uint128) Uint128 {
	return Uint128{Hi: n.Hi | n2.Hi, Lo: n.Lo | n2.Lo}
}

// Xor returns the bitwise exclusive or of n and n2.
func (n Uint128) Xor(n2 Uint128) Uint128 {
	return Uint128{Hi: n.Hi ^ n2.Hi, Lo: n.Lo ^ n2.Lo}
}

// IsZero reports whether n is zero.
func (n Uint128) IsZero() bool {
	return n.Hi == 0 && n.Lo == 0
}

// IsOdd reports whether the least significant bit of n is set.
func (n Uint128) IsOdd() bool {
	return n.Lo&1 == 1
}

// String returns n as a 32 digit, zero-padded hexadecimal string.
func (n Uint128) String() string {
	return fmt.Sprintf("%016x%016x", n.Hi, n.Lo)
}
