// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pcg

import (
	"encoding/binary"
	"math/bits"
	"math/rand/v2"

	"github.com/goodcleanfun/random/math/uint128"
)

var (
	// multiplier128 is the LCG multiplier for the 128-bit state.
	multiplier128 = uint128.New(2549297995355413924, 4865540595714422341)

	// pcg64InitState and pcg64InitInc are the well-known initializer
	// constants for a PCG64 that has not been explicitly seeded.
	pcg64InitState = uint128.New(0x979c9a98d8462005, 0x7d3e9cb6cfe0549b)
	pcg64InitInc   = uint128.New(0x0000000000000001, 0xda3e39cb94b95bdb)

	one128 = uint128.From64(1)
)

// PCG64 is a PCG generator with 128 bits of state and 64-bit output.  The
// zero value is not a usable generator; use NewPCG64 or NewPCG64Seed.
type PCG64 struct {
	state uint128.Uint128
	inc   uint128.Uint128
}

var _ rand.Source = (*PCG64)(nil)

// NewPCG64 returns a generator initialized with fixed, well-known constants.
// Every generator created this way produces the same sequence.
func NewPCG64() *PCG64 {
	return &PCG64{state: pcg64InitState, inc: pcg64InitInc}
}

// NewPCG64Seed returns a generator seeded with the given 64-bit initial
// state and stream selector.
func NewPCG64Seed(initState, initSeq uint64) *PCG64 {
	p := new(PCG64)
	p.Seed(initState, initSeq)
	return p
}

// Reset restores the generator to the fixed initializer constants used by
// NewPCG64.
func (p *PCG64) Reset() {
	p.state = pcg64InitState
	p.inc = pcg64InitInc
}

// Seed reseeds the generator from 64-bit seed material.  It is equivalent to
// Seed128 with both values zero extended.
func (p *PCG64) Seed(initState, initSeq uint64) {
	p.Seed128(uint128.From64(initState), uint128.From64(initSeq))
}

// Seed128 reseeds the generator.  initSeq selects one of 2^127 distinct
// streams and initState the starting position within it.
func (p *PCG64) Seed128(initState, initSeq uint128.Uint128) {
	p.state = uint128.Uint128{}
	p.inc = initSeq.Lsh(1).Or(one128)
	p.step()
	p.state = p.state.Add(initState)
	p.step()
}

func (p *PCG64) step() {
	p.state = p.state.Mul(multiplier128).Add(p.inc)
}

// outputXSLRR permutes a 128-bit state into a 64-bit output.
func outputXSLRR(state uint128.Uint128) uint64 {
	rot := int(state.Hi >> 58)
	return bits.RotateLeft64(state.Hi^state.Lo, -rot)
}

// Uint64 returns a uniformly distributed 64-bit value.
func (p *PCG64) Uint64() uint64 {
	old := p.state
	p.step()
	return outputXSLRR(old)
}

// Uint64N returns a uniformly distributed value in [0, bound) without modulo
// bias.
// Panics if bound == 0.
func (p *PCG64) Uint64N(bound uint64) uint64 {
	if bound == 0 {
		panic(makeError(ErrZeroBound, "pcg: invalid zero bound to "+
			"PCG64.Uint64N"))
	}
	threshold := -bound % bound
	for {
		r := p.Uint64()
		if r >= threshold {
			return r % bound
		}
	}
}

// Read fills b with random bytes.  It always returns len(b) and a nil error.
func (p *PCG64) Read(b []byte) (n int, err error) {
	n = len(b)
	for len(b) >= 8 {
		binary.LittleEndian.PutUint64(b, p.Uint64())
		b = b[8:]
	}
	if len(b) > 0 {
		v := p.Uint64()
		for i := range b {
			b[i] = byte(v)
			v >>= 8
		}
	}
	return n, nil
}

// advanceLCG128 is the 128-bit counterpart of advanceLCG64.
func advanceLCG128(state, delta, curMult, curPlus uint128.Uint128) uint128.Uint128 {
	accMult, accPlus := one128, uint128.Uint128{}
	for !delta.IsZero() {
		if delta.IsOdd() {
			accMult = accMult.Mul(curMult)
			accPlus = accPlus.Mul(curMult).Add(curPlus)
		}
		curPlus = curMult.Add(one128).Mul(curPlus)
		curMult = curMult.Mul(curMult)
		delta = delta.Rsh(1)
	}
	return accMult.Mul(state).Add(accPlus)
}

// Advance moves the generator forward by delta steps as if Uint64 had been
// called delta times.
func (p *PCG64) Advance(delta uint64) {
	p.Advance128(uint128.From64(delta))
}

// Advance128 moves the generator forward by a 128-bit number of steps.
func (p *PCG64) Advance128(delta uint128.Uint128) {
	p.state = advanceLCG128(p.state, delta, multiplier128, p.inc)
}

// Retreat moves the generator back by delta steps, undoing delta calls to
// Uint64.
func (p *PCG64) Retreat(delta uint64) {
	p.Advance128(uint128.From64(delta).Neg())
}
