// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package entropy

// readOSEntropy reads from /dev/urandom.  Systems without the device report
// ErrUnavailable.
func readOSEntropy(b []byte) error {
	return readDevice(devURandom, b)
}
