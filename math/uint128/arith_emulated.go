// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build uint128emulated

package uint128

// Emulated reports whether the portable schoolbook backend is in use.
const Emulated = true

func add(a, b Uint128) Uint128 {
	return addPortable(a, b)
}

func mul(a, b Uint128) Uint128 {
	return mulPortable(a, b)
}
