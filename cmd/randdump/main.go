// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command randdump prints values drawn from the generators provided by the
// random module.  It is primarily useful for comparing streams against other
// implementations and for eyeballing the effect of seeding, advancing, and
// jumping.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/decred/slog"
	"github.com/goodcleanfun/random"
	"github.com/goodcleanfun/random/entropy"
	"github.com/goodcleanfun/random/internal/version"
	"github.com/goodcleanfun/random/pcg"
	"github.com/goodcleanfun/random/xoshiro"
	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// drawFunc returns the textual form of the next value to print.
type drawFunc func() string

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// pcg32Drawer returns a drawFunc over either the global PCG32 generator or a
// fresh instance configured per cfg.
func pcg32Drawer(cfg *config) drawFunc {
	if cfg.Global {
		if !cfg.OS {
			random.Seed32(cfg.Seed, cfg.Seq)
		}
		if cfg.Bound != 0 {
			bound := uint32(cfg.Bound)
			return func() string { return formatUint(uint64(random.Uint32N(bound))) }
		}
		return func() string { return formatUint(uint64(random.Uint32())) }
	}

	var p *pcg.PCG32
	if cfg.OS {
		p = random.NewPCG32OS()
	} else {
		p = pcg.NewPCG32Seed(cfg.Seed, cfg.Seq)
	}
	p.Advance(cfg.Advance)
	if cfg.Bound != 0 {
		bound := uint32(cfg.Bound)
		return func() string { return formatUint(uint64(p.Uint32N(bound))) }
	}
	return func() string { return formatUint(uint64(p.Uint32())) }
}

// pcg64Drawer returns a drawFunc over either the global PCG64 generator or a
// fresh instance configured per cfg.
func pcg64Drawer(cfg *config) drawFunc {
	if cfg.Global {
		if !cfg.OS {
			random.Seed64(cfg.Seed, cfg.Seq)
		}
		if cfg.Bound != 0 {
			return func() string { return formatUint(random.Uint64N(cfg.Bound)) }
		}
		return func() string { return formatUint(random.Uint64()) }
	}

	var p *pcg.PCG64
	if cfg.OS {
		p = random.NewPCG64OS()
	} else {
		p = pcg.NewPCG64Seed(cfg.Seed, cfg.Seq)
	}
	p.Advance(cfg.Advance)
	if cfg.Bound != 0 {
		return func() string { return formatUint(p.Uint64N(cfg.Bound)) }
	}
	return func() string { return formatUint(p.Uint64()) }
}

// newXoshiro returns a xoshiro256+ instance seeded and jumped per cfg.
func newXoshiro(cfg *config) *xoshiro.Xoshiro256Plus {
	var x *xoshiro.Xoshiro256Plus
	if cfg.OS {
		x = random.NewXoshiroOS()
	} else {
		x = xoshiro.NewSeed(cfg.Seed)
	}
	for i := 0; i < cfg.Jump; i++ {
		x.Jump()
	}
	for i := 0; i < cfg.LongJump; i++ {
		x.LongJump()
	}
	return x
}

func formatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// doubleDrawer returns a drawFunc producing float64 values.
func doubleDrawer(cfg *config) drawFunc {
	low, high := cfg.Low, cfg.High
	if cfg.Global {
		if !cfg.OS {
			random.SeedFloat64(cfg.Seed)
		}
		if cfg.hasRange() {
			return func() string { return formatFloat64(random.Float64Range(low, high)) }
		}
		return func() string { return formatFloat64(random.Float64()) }
	}

	x := newXoshiro(cfg)
	if cfg.hasRange() {
		return func() string { return formatFloat64(x.Float64Range(low, high)) }
	}
	return func() string { return formatFloat64(x.Float64()) }
}

// floatDrawer returns a drawFunc producing float32 values.
func floatDrawer(cfg *config) drawFunc {
	low, high := float32(cfg.Low), float32(cfg.High)
	if cfg.Global {
		if !cfg.OS {
			random.SeedFloat32(cfg.Seed)
		}
		if cfg.hasRange() {
			return func() string { return formatFloat32(random.Float32Range(low, high)) }
		}
		return func() string { return formatFloat32(random.Float32()) }
	}

	x := newXoshiro(cfg)
	if cfg.hasRange() {
		return func() string { return formatFloat32(x.Float32Range(low, high)) }
	}
	return func() string { return formatFloat32(x.Float32()) }
}

// wordDrawer returns a drawFunc producing 32-bit words from xoshiro256+.
func wordDrawer(cfg *config) drawFunc {
	x := newXoshiro(cfg)
	if cfg.Bound != 0 {
		bound := uint32(cfg.Bound)
		return func() string { return formatUint(uint64(x.Uint32N(bound))) }
	}
	return func() string { return formatUint(uint64(x.Uint32())) }
}

// run prints cfg.Count values from the configured engine to w, one per line.
func run(cfg *config, w io.Writer) error {
	var draw drawFunc
	switch cfg.Engine {
	case enginePCG32:
		draw = pcg32Drawer(cfg)
	case enginePCG64:
		draw = pcg64Drawer(cfg)
	case engineDouble:
		draw = doubleDrawer(cfg)
	case engineFloat:
		draw = floatDrawer(cfg)
	case engineWord:
		draw = wordDrawer(cfg)
	default:
		return fmt.Errorf("unknown engine %q", cfg.Engine)
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < cfg.Count; i++ {
		if _, err := fmt.Fprintln(bw, draw()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// setupLogging routes the package loggers to stderr at the configured level.
func setupLogging(cfg *config) {
	backend := slog.NewBackend(os.Stderr)
	randLog := backend.Logger("RAND")
	randLog.SetLevel(cfg.logLevel)
	entrLog := backend.Logger("ENTR")
	entrLog.SetLevel(cfg.logLevel)
	random.UseLogger(randLog)
	entropy.UseLogger(entrLog)
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fatalf("%v\n", err)
	}

	if cfg.ShowVer {
		fmt.Printf("randdump version %s (Go version %s %s/%s)\n",
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	setupLogging(cfg)
	if err := run(cfg, os.Stdout); err != nil {
		fatalf("%v\n", err)
	}
}
