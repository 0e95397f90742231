// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xoshiro

import (
	"math/bits"
	"math/rand/v2"
)

// DefaultSeed is the seed used by New.
const DefaultSeed = 0x853c49e6748fea9b

const (
	// float64Scale is 2^-53, the spacing of the float64 values in [0, 1)
	// produced from 53 random bits.
	float64Scale = 1.0 / (1 << 53)

	// float32Scale is 2^-24, the spacing of the float32 values in [0, 1)
	// produced from 24 random bits.
	float32Scale = 1.0 / (1 << 24)
)

var (
	// jumpPoly advances the state by 2^128 steps.
	jumpPoly = [4]uint64{
		0x180ec6d33cfd0aba, 0xd5a61266f0c9392c,
		0xa9582618e03fc9aa, 0x39abdc4529b1661c,
	}

	// longJumpPoly advances the state by 2^192 steps.
	longJumpPoly = [4]uint64{
		0x76e15d3efefdcbbf, 0xc5004e441c522fb3,
		0x77710069854ee241, 0x39109bb02acbe635,
	}
)

// Xoshiro256Plus is a xoshiro256+ generator.  The zero value is not a usable
// generator; use New or NewSeed.
type Xoshiro256Plus struct {
	s [4]uint64
}

var _ rand.Source = (*Xoshiro256Plus)(nil)

// New returns a generator seeded with DefaultSeed.  Every generator created
// this way produces the same sequence.
func New() *Xoshiro256Plus {
	return NewSeed(DefaultSeed)
}

// NewSeed returns a generator seeded from a single 64-bit seed.
func NewSeed(seed uint64) *Xoshiro256Plus {
	x := new(Xoshiro256Plus)
	x.Seed(seed)
	return x
}

// splitMix64 advances the splitmix64 counter and returns its next output.
func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Seed reseeds the generator by filling the state with successive splitmix64
// outputs.  The splitmix64 output function is a bijection and the four
// counters are distinct, so at most one state word can be zero.
func (x *Xoshiro256Plus) Seed(seed uint64) {
	for i := range x.s {
		x.s[i] = splitMix64(&seed)
	}
}

// Next returns the raw 64-bit output and advances the state.
func (x *Xoshiro256Plus) Next() uint64 {
	s := &x.s
	result := s[0] + s[3]

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// Uint64 returns a 64-bit value.  It is the same as Next and exists to
// satisfy math/rand/v2.Source.
func (x *Xoshiro256Plus) Uint64() uint64 {
	return x.Next()
}

// Uint32 returns the upper 32 bits of the next raw value.  The lower bits are
// discarded as they have weaker statistical quality.
func (x *Xoshiro256Plus) Uint32() uint32 {
	return uint32(x.Next() >> 32)
}

// Uint32N returns a uniformly distributed value in [0, bound) drawn from the
// word view without modulo bias.
// Panics if bound == 0.
func (x *Xoshiro256Plus) Uint32N(bound uint32) uint32 {
	if bound == 0 {
		panic(makeError(ErrZeroBound, "xoshiro: invalid zero bound to "+
			"Uint32N"))
	}
	threshold := -bound % bound
	for {
		r := x.Uint32()
		if r >= threshold {
			return r % bound
		}
	}
}

// Uint64N returns a uniformly distributed value in [0, bound) without modulo
// bias.
// Panics if bound == 0.
func (x *Xoshiro256Plus) Uint64N(bound uint64) uint64 {
	if bound == 0 {
		panic(makeError(ErrZeroBound, "xoshiro: invalid zero bound to "+
			"Uint64N"))
	}
	threshold := -bound % bound
	for {
		r := x.Next()
		if r >= threshold {
			return r % bound
		}
	}
}

// Float64FromBits converts the top 53 bits of a raw value to a float64 in
// [0, 1).  The result is exactly zero only when those bits are all zero and
// is never 1.
func Float64FromBits(v uint64) float64 {
	return float64(v>>11) * float64Scale
}

// Float32FromBits converts the top 24 bits of a 32-bit word to a float32 in
// [0, 1).
func Float32FromBits(v uint32) float32 {
	return float32(v>>8) * float32Scale
}

// Float64 returns a uniformly distributed float64 in [0, 1).
func (x *Xoshiro256Plus) Float64() float64 {
	return Float64FromBits(x.Next())
}

// Float64Range returns a uniformly distributed float64 in [low, high).
func (x *Xoshiro256Plus) Float64Range(low, high float64) float64 {
	return low + (high-low)*x.Float64()
}

// Float32 returns a uniformly distributed float32 in [0, 1).
func (x *Xoshiro256Plus) Float32() float32 {
	return Float32FromBits(x.Uint32())
}

// Float32Range returns a uniformly distributed float32 in [low, high).
func (x *Xoshiro256Plus) Float32Range(low, high float32) float32 {
	return low + (high-low)*x.Float32()
}

// jump replaces the state with the state reached after the number of steps
// encoded by poly.
func (x *Xoshiro256Plus) jump(poly *[4]uint64) {
	var acc [4]uint64
	for _, word := range poly {
		for b := 0; b < 64; b++ {
			if word&(1<<b) != 0 {
				acc[0] ^= x.s[0]
				acc[1] ^= x.s[1]
				acc[2] ^= x.s[2]
				acc[3] ^= x.s[3]
			}
			x.Next()
		}
	}
	x.s = acc
}

// Jump advances the generator by 2^128 steps.  Successive jumps from one seed
// yield 2^128 non-overlapping subsequences for parallel computations.
func (x *Xoshiro256Plus) Jump() {
	x.jump(&jumpPoly)
}

// LongJump advances the generator by 2^192 steps.  It yields 2^64 starting
// points, from each of which Jump yields 2^64 non-overlapping subsequences.
func (x *Xoshiro256Plus) LongJump() {
	x.jump(&longJumpPoly)
}
