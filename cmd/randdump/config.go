// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

const (
	enginePCG32  = "pcg32"
	enginePCG64  = "pcg64"
	engineDouble = "double"
	engineFloat  = "float"
	engineWord   = "word"

	defaultEngine     = enginePCG32
	defaultCount      = 10
	defaultDebugLevel = "info"
)

// errUsage is returned by loadConfig when the options are invalid.  The
// description of the problem is wrapped around it.
var errUsage = errors.New("invalid usage")

type config struct {
	Engine     string  `short:"e" long:"engine" description:"Generator to draw from {pcg32, pcg64, double, float, word}"`
	Seed       uint64  `short:"s" long:"seed" description:"Initial state for pcg engines or seed for xoshiro engines"`
	Seq        uint64  `long:"seq" description:"Stream selector for pcg engines"`
	OS         bool    `long:"os" description:"Seed from operating system entropy instead of --seed and --seq"`
	Count      int     `short:"n" long:"count" description:"Number of values to print"`
	Bound      uint64  `short:"b" long:"bound" description:"Print integers in [0, bound) rather than raw values (integer engines only)"`
	Low        float64 `long:"low" description:"Lower bound of the float range (float engines only)"`
	High       float64 `long:"high" description:"Upper bound of the float range (float engines only)"`
	Advance    uint64  `long:"advance" description:"Skip this many draws before printing (pcg engines only)"`
	Jump       int     `long:"jump" description:"Apply this many 2^128 step jumps before printing (xoshiro engines only)"`
	LongJump   int     `long:"longjump" description:"Apply this many 2^192 step jumps before printing (xoshiro engines only)"`
	Global     bool    `short:"g" long:"global" description:"Draw through the process-wide generator"`
	DebugLevel string  `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	ShowVer    bool    `short:"V" long:"version" description:"Display version information and exit"`

	logLevel slog.Level
}

// isPCG reports whether the configured engine is one of the pcg engines.
func (cfg *config) isPCG() bool {
	return cfg.Engine == enginePCG32 || cfg.Engine == enginePCG64
}

// isFloat reports whether the configured engine produces floats.
func (cfg *config) isFloat() bool {
	return cfg.Engine == engineDouble || cfg.Engine == engineFloat
}

// hasRange reports whether a float range other than [0, 1) was requested.
func (cfg *config) hasRange() bool {
	return cfg.Low != 0 || cfg.High != 0
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// validate checks the combination of options is meaningful for the selected
// engine.
func (cfg *config) validate() error {
	switch cfg.Engine {
	case enginePCG32, enginePCG64, engineDouble, engineFloat, engineWord:
	default:
		return usageError("unknown engine %q", cfg.Engine)
	}

	level, ok := slog.LevelFromString(cfg.DebugLevel)
	if !ok {
		return usageError("unknown debug level %q", cfg.DebugLevel)
	}
	cfg.logLevel = level

	switch {
	case cfg.Count < 0:
		return usageError("count must not be negative")
	case cfg.Jump < 0 || cfg.LongJump < 0:
		return usageError("jump counts must not be negative")
	case cfg.OS && (cfg.Seed != 0 || cfg.Seq != 0):
		return usageError("--os may not be combined with --seed or --seq")
	case cfg.Bound != 0 && cfg.isFloat():
		return usageError("--bound requires an integer engine")
	case cfg.Bound > math.MaxUint32 &&
		(cfg.Engine == enginePCG32 || cfg.Engine == engineWord):
		return usageError("--bound must fit in 32 bits for the %s engine",
			cfg.Engine)
	case cfg.hasRange() && !cfg.isFloat():
		return usageError("--low and --high require a float engine")
	case cfg.hasRange() && !(cfg.Low < cfg.High):
		return usageError("--low must be less than --high")
	case cfg.Advance != 0 && !cfg.isPCG():
		return usageError("--advance requires a pcg engine")
	case (cfg.Jump != 0 || cfg.LongJump != 0) && cfg.isPCG():
		return usageError("--jump and --longjump require a xoshiro engine")
	case cfg.Global && cfg.Engine == engineWord:
		return usageError("the word engine has no global generator")
	case cfg.Global && (cfg.Advance != 0 || cfg.Jump != 0 ||
		cfg.LongJump != 0):
		return usageError("--global may not be combined with --advance, " +
			"--jump or --longjump")
	case cfg.Seq != 0 && !cfg.isPCG():
		return usageError("--seq requires a pcg engine")
	}
	return nil
}

// loadConfig parses the command line arguments into a validated config.
// Help requests are returned as a *flags.Error of type flags.ErrHelp.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Engine:     defaultEngine,
		Count:      defaultCount,
		DebugLevel: defaultDebugLevel,
	}
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remaining) != 0 {
		return nil, usageError("unexpected arguments %q", remaining)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
