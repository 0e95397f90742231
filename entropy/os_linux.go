// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package entropy

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// readOSEntropy reads from the getrandom(2) system call without blocking,
// retrying partial and interrupted reads.  Kernels without the call, or whose
// pool is not yet initialized, are served from /dev/urandom instead.
func readOSEntropy(b []byte) error {
	for filled := 0; filled < len(b); {
		n, err := unix.Getrandom(b[filled:], unix.GRND_NONBLOCK)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.ENOSYS), errors.Is(err, unix.EAGAIN):
			return readDevice(devURandom, b)
		case err != nil:
			str := fmt.Sprintf("getrandom failed: %v", err)
			return makeError(ErrReadFailed, str)
		case n <= 0:
			str := fmt.Sprintf("short read from getrandom: got %d bytes, "+
				"want %d", filled, len(b))
			return makeError(ErrShortRead, str)
		}
		filled += n
	}
	return nil
}
