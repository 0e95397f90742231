// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/goodcleanfun/random/internal/lazy"
	"github.com/goodcleanfun/random/pcg"
)

// devURandom is the path of the random device read when no system call is
// available.
const devURandom = "/dev/urandom"

var (
	// readOS reads from the OS entropy source.  It is a variable so tests
	// can simulate an unavailable source.
	readOS = readOSEntropy

	// fallbackRNG is the private generator backing Fallback.
	fallbackRNG = lazy.New(seedFallback)

	// fallbackWarned is set once the first fallback has been logged.
	fallbackWarned atomic.Bool
)

// ReadOS fills b with bytes read from the operating system entropy source.
// A nil error means len(b) bytes were read.  On error the contents of b are
// unspecified.
func ReadOS(b []byte) error {
	return readOS(b)
}

// readDevice fills b from the random device at path.  Any open, read, short
// read or close failure is an error.
func readDevice(path string, b []byte) error {
	f, err := os.Open(path)
	if err != nil {
		str := fmt.Sprintf("unable to open %s: %v", path, err)
		return makeError(ErrUnavailable, str)
	}
	n, readErr := io.ReadFull(f, b)
	if err := f.Close(); err != nil {
		str := fmt.Sprintf("unable to close %s: %v", path, err)
		return makeError(ErrCloseFailed, str)
	}
	switch {
	case n != len(b) && (readErr == nil || readErr == io.ErrUnexpectedEOF ||
		readErr == io.EOF):
		str := fmt.Sprintf("short read from %s: got %d bytes, want %d",
			path, n, len(b))
		return makeError(ErrShortRead, str)
	case readErr != nil:
		str := fmt.Sprintf("unable to read %s: %v", path, readErr)
		return makeError(ErrReadFailed, str)
	}
	return nil
}

// seedFallback seeds the fallback generator from the time and the addresses
// of a function and a stack variable.
func seedFallback(p *pcg.PCG32, _ bool) {
	var local int
	fnAddr := uint64(reflect.ValueOf(seedFallback).Pointer())
	stackAddr := uint64(uintptr(unsafe.Pointer(&local)))
	p.Seed(uint64(time.Now().UnixNano())^fnAddr, stackAddr)
}

// Fallback fills b from the private fallback generator, one byte per draw.
// It always succeeds and is safe for concurrent use, but the output is not
// suitable for cryptographic purposes.
func Fallback(b []byte) {
	fallbackRNG.WithLock(false, func(p *pcg.PCG32) {
		for i := range b {
			b[i] = byte(p.Uint32())
		}
	})
}

// Read fills b with seed material.  It reads the OS entropy source and falls
// back to Fallback should that fail.  It never fails.
func Read(b []byte) {
	err := readOS(b)
	if err == nil {
		return
	}
	if fallbackWarned.CompareAndSwap(false, true) {
		log.Warnf("OS entropy source unavailable, using non-cryptographic "+
			"fallback: %v", err)
	} else {
		log.Debugf("Using non-cryptographic entropy fallback: %v", err)
	}
	Fallback(b)
}

// Uint64 returns 64 bits of seed material obtained via Read.
func Uint64() uint64 {
	var b [8]byte
	Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Uint128 returns 128 bits of seed material obtained via Read as high and
// low halves.
func Uint128() (hi, lo uint64) {
	var b [16]byte
	Read(b[:])
	return binary.LittleEndian.Uint64(b[8:]), binary.LittleEndian.Uint64(b[:8])
}
