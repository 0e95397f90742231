// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"github.com/goodcleanfun/random/entropy"
	"github.com/goodcleanfun/random/math/uint128"
	"github.com/goodcleanfun/random/pcg"
	"github.com/goodcleanfun/random/xoshiro"
)

// SeedPCG32OS reseeds p with 128 bits of entropy.
func SeedPCG32OS(p *pcg.PCG32) {
	initState, initSeq := entropy.Uint128()
	p.Seed(initState, initSeq)
}

// NewPCG32OS returns a PCG32 seeded with entropy.
func NewPCG32OS() *pcg.PCG32 {
	p := new(pcg.PCG32)
	SeedPCG32OS(p)
	return p
}

// SeedPCG64OS reseeds p with 256 bits of entropy.
func SeedPCG64OS(p *pcg.PCG64) {
	stateHi, stateLo := entropy.Uint128()
	seqHi, seqLo := entropy.Uint128()
	p.Seed128(uint128.New(stateHi, stateLo), uint128.New(seqHi, seqLo))
}

// NewPCG64OS returns a PCG64 seeded with entropy.
func NewPCG64OS() *pcg.PCG64 {
	p := new(pcg.PCG64)
	SeedPCG64OS(p)
	return p
}

// SeedXoshiroOS reseeds x with 64 bits of entropy.
func SeedXoshiroOS(x *xoshiro.Xoshiro256Plus) {
	x.Seed(entropy.Uint64())
}

// NewXoshiroOS returns a xoshiro256+ generator seeded with entropy.
func NewXoshiroOS() *xoshiro.Xoshiro256Plus {
	x := new(xoshiro.Xoshiro256Plus)
	SeedXoshiroOS(x)
	return x
}
