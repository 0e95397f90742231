// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"github.com/goodcleanfun/random/internal/lazy"
	"github.com/goodcleanfun/random/pcg"
	"github.com/goodcleanfun/random/xoshiro"
)

var (
	globalPCG32   = lazy.New(initPCG32)
	globalPCG64   = lazy.New(initPCG64)
	globalFloat64 = lazy.New(initXoshiro("float64"))
	globalFloat32 = lazy.New(initXoshiro("float32"))
)

func logInit(name string, fromEntropy bool) {
	if fromEntropy {
		log.Debugf("Initialized global %s generator from entropy", name)
		return
	}
	log.Debugf("Initialized global %s generator with default state", name)
}

func initPCG32(p *pcg.PCG32, fromEntropy bool) {
	p.Reset()
	if fromEntropy {
		SeedPCG32OS(p)
	}
	logInit("PCG32", fromEntropy)
}

func initPCG64(p *pcg.PCG64, fromEntropy bool) {
	p.Reset()
	if fromEntropy {
		SeedPCG64OS(p)
	}
	logInit("PCG64", fromEntropy)
}

func initXoshiro(name string) func(*xoshiro.Xoshiro256Plus, bool) {
	return func(x *xoshiro.Xoshiro256Plus, fromEntropy bool) {
		x.Seed(xoshiro.DefaultSeed)
		if fromEntropy {
			SeedXoshiroOS(x)
		}
		logInit(name, fromEntropy)
	}
}

// Seed32 seeds the global PCG32 generator.
func Seed32(initState, initSeq uint64) {
	globalPCG32.Get(false).Seed(initState, initSeq)
}

// Uint32 returns a uniformly distributed 32-bit value from the global PCG32
// generator.
func Uint32() uint32 {
	return globalPCG32.Get(true).Uint32()
}

// Uint32N returns a uniformly distributed value in [0, bound) from the global
// PCG32 generator.
// Panics if bound == 0.
func Uint32N(bound uint32) uint32 {
	return globalPCG32.Get(true).Uint32N(bound)
}

// Seed64 seeds the global PCG64 generator.
func Seed64(initState, initSeq uint64) {
	globalPCG64.Get(false).Seed(initState, initSeq)
}

// Uint64 returns a uniformly distributed 64-bit value from the global PCG64
// generator.
func Uint64() uint64 {
	return globalPCG64.Get(true).Uint64()
}

// Uint64N returns a uniformly distributed value in [0, bound) from the global
// PCG64 generator.
// Panics if bound == 0.
func Uint64N(bound uint64) uint64 {
	return globalPCG64.Get(true).Uint64N(bound)
}

// SeedFloat64 seeds the global generator behind Float64 and Float64Range.
func SeedFloat64(seed uint64) {
	globalFloat64.Get(false).Seed(seed)
}

// Float64 returns a uniformly distributed float64 in [0, 1).
func Float64() float64 {
	return globalFloat64.Get(true).Float64()
}

// Float64Range returns a uniformly distributed float64 in [low, high).
func Float64Range(low, high float64) float64 {
	return globalFloat64.Get(true).Float64Range(low, high)
}

// SeedFloat32 seeds the global generator behind Float32 and Float32Range.
func SeedFloat32(seed uint64) {
	globalFloat32.Get(false).Seed(seed)
}

// Float32 returns a uniformly distributed float32 in [0, 1).
func Float32() float32 {
	return globalFloat32.Get(true).Float32()
}

// Float32Range returns a uniformly distributed float32 in [low, high).
func Float32Range(low, high float32) float32 {
	return globalFloat32.Get(true).Float32Range(low, high)
}
