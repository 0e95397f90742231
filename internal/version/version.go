// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information reported by the commands in
// this module.
package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
)

// Version is the module version per the semantic versioning 2.0.0 spec
// (https://semver.org/).  It may be overridden at build time with:
// '-ldflags "-X github.com/goodcleanfun/random/internal/version.Version=fullsemver"'
//
// It MUST be a full semantic version or the package will panic at init.
var Version = "0.1.0-pre"

// These fields are parsed from Version during init.
var (
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
)

const identAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

// checkIdents ensures s is a non-empty dot separated list of non-empty
// identifiers drawn from identAlphabet.
func checkIdents(s, field string) error {
	for _, ident := range strings.Split(s, ".") {
		if ident == "" {
			return fmt.Errorf("malformed semver %s: empty identifier", field)
		}
		for _, r := range ident {
			if !strings.ContainsRune(identAlphabet, r) {
				return fmt.Errorf("malformed semver %s: %q invalid", field, r)
			}
		}
	}
	return nil
}

func parseUint(s, field string) (uint, error) {
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("malformed semver %s: leading zero", field)
	}
	v, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("malformed semver %s: %w", field, err)
	}
	return uint(v), nil
}

// parseSemVer splits a semantic version string into its components.
func parseSemVer(s string) (major, minor, patch uint, pre, build string, err error) {
	core, build, hasBuild := strings.Cut(s, "+")
	core, pre, hasPre := strings.Cut(core, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		err = fmt.Errorf("malformed version string %q: want MAJOR.MINOR.PATCH", s)
		return
	}
	if major, err = parseUint(parts[0], "major"); err != nil {
		return
	}
	if minor, err = parseUint(parts[1], "minor"); err != nil {
		return
	}
	if patch, err = parseUint(parts[2], "patch"); err != nil {
		return
	}
	if hasPre {
		if err = checkIdents(pre, "pre-release"); err != nil {
			return
		}
	}
	if hasBuild {
		if err = checkIdents(build, "build metadata"); err != nil {
			return
		}
	}
	return major, minor, patch, pre, build, nil
}

func init() {
	var err error
	Major, Minor, Patch, PreRelease, BuildMetadata, err = parseSemVer(Version)
	if err != nil {
		panic(err)
	}
}

// vcsRevision returns the abbreviated revision recorded by the go tool, if
// any.
func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

// String returns the version.  Builds without explicit build metadata carry
// the VCS revision as build metadata when it is known.
func String() string {
	if BuildMetadata != "" {
		return Version
	}
	if rev := vcsRevision(); rev != "" {
		return Version + "+" + rev
	}
	return Version
}
