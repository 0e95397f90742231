// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pcg

import (
	"encoding/binary"
	"math/bits"
)

const (
	// multiplier64 is the LCG multiplier for the 64-bit state.
	multiplier64 = 6364136223846793005

	// pcg32InitState and pcg32InitInc are the well-known initializer
	// constants for a PCG32 that has not been explicitly seeded.
	pcg32InitState = 0x853c49e6748fea9b
	pcg32InitInc   = 0xda3e39cb94b95bdb
)

// PCG32 is a PCG generator with 64 bits of state and 32-bit output.  The
// zero value is not a usable generator; use NewPCG32 or NewPCG32Seed.
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 returns a generator initialized with fixed, well-known constants.
// Every generator created this way produces the same sequence.
func NewPCG32() *PCG32 {
	return &PCG32{state: pcg32InitState, inc: pcg32InitInc}
}

// NewPCG32Seed returns a generator seeded with the given initial state and
// stream selector.
func NewPCG32Seed(initState, initSeq uint64) *PCG32 {
	p := new(PCG32)
	p.Seed(initState, initSeq)
	return p
}

// Reset restores the generator to the fixed initializer constants used by
// NewPCG32.
func (p *PCG32) Reset() {
	p.state = pcg32InitState
	p.inc = pcg32InitInc
}

// Seed reseeds the generator.  initSeq selects one of 2^63 distinct streams
// and initState the starting position within it.
func (p *PCG32) Seed(initState, initSeq uint64) {
	p.state = 0
	p.inc = initSeq<<1 | 1
	p.step()
	p.state += initState
	p.step()
}

func (p *PCG32) step() {
	p.state = p.state*multiplier64 + p.inc
}

// outputXSHRR permutes a 64-bit state into a 32-bit output.
func outputXSHRR(state uint64) uint32 {
	xorShifted := uint32(((state >> 18) ^ state) >> 27)
	rot := int(state >> 59)
	return bits.RotateLeft32(xorShifted, -rot)
}

// Uint32 returns a uniformly distributed 32-bit value.
func (p *PCG32) Uint32() uint32 {
	old := p.state
	p.step()
	return outputXSHRR(old)
}

// Uint32N returns a uniformly distributed value in [0, bound) without modulo
// bias.
// Panics if bound == 0.
func (p *PCG32) Uint32N(bound uint32) uint32 {
	if bound == 0 {
		panic(makeError(ErrZeroBound, "pcg: invalid zero bound to "+
			"PCG32.Uint32N"))
	}
	threshold := -bound % bound
	for {
		r := p.Uint32()
		if r >= threshold {
			return r % bound
		}
	}
}

// Read fills b with random bytes.  It always returns len(b) and a nil error.
func (p *PCG32) Read(b []byte) (n int, err error) {
	n = len(b)
	for len(b) >= 4 {
		binary.LittleEndian.PutUint32(b, p.Uint32())
		b = b[4:]
	}
	if len(b) > 0 {
		v := p.Uint32()
		for i := range b {
			b[i] = byte(v)
			v >>= 8
		}
	}
	return n, nil
}

// advanceLCG64 returns the state reached by applying the recurrence
// s = s*mult + plus delta times, in O(log delta) steps.
//
// This is Brown's algorithm from "Random Number Generation with Arbitrary
// Stride", Transactions of the American Nuclear Society (Nov. 1994).
func advanceLCG64(state, delta, curMult, curPlus uint64) uint64 {
	accMult, accPlus := uint64(1), uint64(0)
	for delta > 0 {
		if delta&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
		delta >>= 1
	}
	return accMult*state + accPlus
}

// Advance moves the generator forward by delta steps as if Uint32 had been
// called delta times.
func (p *PCG32) Advance(delta uint64) {
	p.state = advanceLCG64(p.state, delta, multiplier64, p.inc)
}

// Retreat moves the generator back by delta steps, undoing delta calls to
// Uint32.
func (p *PCG32) Retreat(delta uint64) {
	p.Advance(-delta)
}
