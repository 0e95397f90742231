// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xoshiro

import (
	"encoding/binary"
	"errors"
	"math"
	"math/bits"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/dcrd/crypto/rand"
	"github.com/jrick/bitset"
)

// windowLen is the number of consecutive outputs hashed together when
// comparing streams for overlap.
const windowLen = 4

// windowHashes returns the set of blake256 hashes of every window of
// consecutive outputs in the next n draws from x.
func windowHashes(x *Xoshiro256Plus, n int) map[[32]byte]struct{} {
	outputs := make([]uint64, n)
	for i := range outputs {
		outputs[i] = x.Next()
	}
	buf := make([]byte, windowLen*8)
	hashes := make(map[[32]byte]struct{}, n)
	for i := 0; i+windowLen <= n; i++ {
		for j := 0; j < windowLen; j++ {
			binary.LittleEndian.PutUint64(buf[j*8:], outputs[i+j])
		}
		hashes[blake256.Sum256(buf)] = struct{}{}
	}
	return hashes
}

// TestNextStateUpdate ensures the step function emits s0+s3 from the state
// before the update and applies the update in the documented order.
func TestNextStateUpdate(t *testing.T) {
	x := &Xoshiro256Plus{s: [4]uint64{1, 2, 3, 4}}
	if got := x.Next(); got != 5 {
		t.Fatalf("first output: got %d, want 5", got)
	}

	// Worked by hand from s = {1, 2, 3, 4}:
	//   t = 2<<17; s2 = 3^1 = 2; s3 = 4^2 = 6; s1 = 2^2 = 0; s0 = 1^6 = 7;
	//   s2 = 2^t; s3 = rotl(6, 45).
	want := [4]uint64{7, 0, 2 ^ 2<<17, bits.RotateLeft64(6, 45)}
	if x.s != want {
		t.Fatalf("state mismatch:\n got %v\nwant %v", spew.Sdump(x.s),
			spew.Sdump(want))
	}
	if got, want := x.Next(), uint64(7)+bits.RotateLeft64(6, 45); got != want {
		t.Fatalf("second output: got %#x, want %#x", got, want)
	}
}

// TestSeedNeverZero ensures seeding never produces the all-zero state and
// that the default constructor is deterministic.
func TestSeedNeverZero(t *testing.T) {
	seeds := []uint64{0, 1, DefaultSeed, ^uint64(0), 0x9e3779b97f4a7c15,
		0x61c8864680b583eb, rand.Uint64()}
	for _, seed := range seeds {
		x := NewSeed(seed)
		if x.s == [4]uint64{} {
			t.Errorf("seed %#x produced the all-zero state", seed)
		}
	}

	if *New() != *NewSeed(DefaultSeed) {
		t.Fatal("New does not use DefaultSeed")
	}
}

// TestNearbySeedsDiverge ensures nearby seeds produce different output
// immediately.
func TestNearbySeedsDiverge(t *testing.T) {
	seeds := []uint64{0, 1, 123456789, rand.Uint64()}
	for _, seed := range seeds {
		a, b := NewSeed(seed), NewSeed(seed+1)
		if x, y := a.Next(), b.Next(); x == y {
			t.Errorf("seeds %d and %d collide on first draw: %#x", seed,
				seed+1, x)
		}
	}
}

// TestFloat64FromBits ensures the double conversion stays in [0, 1) and only
// returns zero when the top 53 bits are zero.
func TestFloat64FromBits(t *testing.T) {
	tests := []struct {
		in   uint64
		want float64
	}{
		{0, 0},
		{1<<11 - 1, 0},
		{1 << 11, 0x1p-53},
		{1 << 63, 0.5},
		{^uint64(0), 1 - 0x1p-53},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		if got := Float64FromBits(test.in); got != test.want {
			t.Errorf("#%d: Float64FromBits(%#x) = %v, want %v", i, test.in,
				got, test.want)
		}
	}

	x := NewSeed(rand.Uint64())
	for i := 0; i < 10000; i++ {
		v := x.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %v", v)
		}
	}
}

// TestFloat32FromBits ensures the float conversion stays in [0, 1).
func TestFloat32FromBits(t *testing.T) {
	tests := []struct {
		in   uint32
		want float32
	}{
		{0, 0},
		{1<<8 - 1, 0},
		{1 << 8, 0x1p-24},
		{1 << 31, 0.5},
		{^uint32(0), 1 - 0x1p-24},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		if got := Float32FromBits(test.in); got != test.want {
			t.Errorf("#%d: Float32FromBits(%#x) = %v, want %v", i, test.in,
				got, test.want)
		}
	}

	x := NewSeed(rand.Uint64())
	for i := 0; i < 10000; i++ {
		v := x.Float32()
		if v < 0 || v >= 1 {
			t.Fatalf("Float32 out of range: %v", v)
		}
	}
}

// TestWordView ensures the word and float32 views take the upper bits of the
// raw output.
func TestWordView(t *testing.T) {
	seed := rand.Uint64()
	raw, word, f32 := NewSeed(seed), NewSeed(seed), NewSeed(seed)
	for i := 0; i < 100; i++ {
		r := raw.Next()
		if got := word.Uint32(); got != uint32(r>>32) {
			t.Fatalf("draw %d: Uint32 = %#x, want %#x", i, got, r>>32)
		}
		if got, want := f32.Float32(), Float32FromBits(uint32(r>>32)); got != want {
			t.Fatalf("draw %d: Float32 = %v, want %v", i, got, want)
		}
	}
}

// TestRanges ensures the bounded float helpers stay within [low, high).
func TestRanges(t *testing.T) {
	x := NewSeed(rand.Uint64())
	for i := 0; i < 10000; i++ {
		if v := x.Float64Range(-3, 7); v < -3 || v >= 7 {
			t.Fatalf("Float64Range out of range: %v", v)
		}
		if v := x.Float32Range(10, 11); v < 10 || v > 11 {
			t.Fatalf("Float32Range out of range: %v", v)
		}
	}
	if v := x.Float64Range(2, 2); v != 2 {
		t.Fatalf("empty Float64Range: got %v", v)
	}
	if v := x.Float64Range(0, math.MaxFloat64); math.IsInf(v, 0) {
		t.Fatal("Float64Range overflowed")
	}
}

// TestBounded ensures bounded draws fall within the bound and cover small
// ranges.
func TestBounded(t *testing.T) {
	const draws = 10000
	x := NewSeed(123456789)
	for _, bound := range []uint32{1, 2, 100, 1<<31 - 1, ^uint32(0)} {
		for i := 0; i < draws; i++ {
			if v := x.Uint32N(bound); v >= bound {
				t.Fatalf("Uint32N(%d) = %d", bound, v)
			}
			if v := x.Uint64N(uint64(bound)); v >= uint64(bound) {
				t.Fatalf("Uint64N(%d) = %d", bound, v)
			}
		}
	}

	const bound = 100
	seen := bitset.NewBytes(bound)
	for i := 0; i < draws; i++ {
		seen.Set(int(x.Uint32N(bound)))
	}
	for i := 0; i < bound; i++ {
		if !seen.Get(i) {
			t.Errorf("Uint32N never produced %d", i)
		}
	}
}

// TestZeroBoundPanics ensures a zero bound panics with ErrZeroBound.
func TestZeroBoundPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Uint32N", func() { New().Uint32N(0) }},
		{"Uint64N", func() { New().Uint64N(0) }},
	}

	for _, test := range tests {
		func() {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrZeroBound) {
					t.Errorf("%s: unexpected panic value: %v", test.name, err)
				}
			}()
			test.fn()
		}()
	}
}

// TestJumpLinear ensures the jumps are linear over GF(2), as required of a
// power of the linear state transition.
func TestJumpLinear(t *testing.T) {
	jumps := []struct {
		name string
		fn   func(*Xoshiro256Plus)
	}{
		{"Jump", (*Xoshiro256Plus).Jump},
		{"LongJump", (*Xoshiro256Plus).LongJump},
	}

	for _, jump := range jumps {
		a, b := NewSeed(rand.Uint64()), NewSeed(rand.Uint64())
		var ab Xoshiro256Plus
		for i := range ab.s {
			ab.s[i] = a.s[i] ^ b.s[i]
		}
		jump.fn(a)
		jump.fn(b)
		jump.fn(&ab)
		for i := range ab.s {
			if ab.s[i] != a.s[i]^b.s[i] {
				t.Fatalf("%s is not linear:\n%v", jump.name, spew.Sdump(a,
					b, &ab))
			}
		}
	}
}

// TestJumpCommutesWithNext ensures jumping then stepping matches stepping
// then jumping.
func TestJumpCommutesWithNext(t *testing.T) {
	seed := rand.Uint64()
	a, b := NewSeed(seed), NewSeed(seed)
	a.Jump()
	a.Next()
	b.Next()
	b.Jump()
	if *a != *b {
		t.Fatalf("Jump does not commute with Next:\n%v", spew.Sdump(a, b))
	}

	a.LongJump()
	a.Next()
	b.Next()
	b.LongJump()
	if *a != *b {
		t.Fatalf("LongJump does not commute with Next:\n%v", spew.Sdump(a,
			b))
	}
}

// TestJumpNoOverlap ensures the streams following a jump and a long jump do
// not overlap the stream before the jump or each other.
func TestJumpNoOverlap(t *testing.T) {
	const n = 1 << 10

	seed := rand.Uint64()
	base := windowHashes(NewSeed(seed), n)

	jumped := NewSeed(seed)
	jumped.Jump()
	jumpHashes := windowHashes(jumped, n)

	longJumped := NewSeed(seed)
	longJumped.LongJump()
	longHashes := windowHashes(longJumped, n)

	for h := range jumpHashes {
		if _, ok := base[h]; ok {
			t.Fatal("jumped stream overlaps the base stream")
		}
		if _, ok := longHashes[h]; ok {
			t.Fatal("jumped stream overlaps the long jumped stream")
		}
	}
	for h := range longHashes {
		if _, ok := base[h]; ok {
			t.Fatal("long jumped stream overlaps the base stream")
		}
	}
}
