// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrUnavailable, "ErrUnavailable"},
		{ErrReadFailed, "ErrReadFailed"},
		{ErrShortRead, "ErrShortRead"},
		{ErrCloseFailed, "ErrCloseFailed"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as
// being a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrUnavailable == ErrUnavailable",
		err:       ErrUnavailable,
		target:    ErrUnavailable,
		wantMatch: true,
		wantAs:    ErrUnavailable,
	}, {
		name:      "Error.ErrUnavailable == ErrUnavailable",
		err:       makeError(ErrUnavailable, ""),
		target:    ErrUnavailable,
		wantMatch: true,
		wantAs:    ErrUnavailable,
	}, {
		name:      "Error.ErrShortRead != ErrUnavailable",
		err:       makeError(ErrShortRead, ""),
		target:    ErrUnavailable,
		wantMatch: false,
		wantAs:    ErrShortRead,
	}, {
		name:      "Error.ErrUnavailable != io.EOF",
		err:       makeError(ErrUnavailable, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrUnavailable,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected code.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error", test.name)
			continue
		}
		if !errors.Is(kind, test.wantAs) {
			t.Errorf("%s: unexpected unwrapped error -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
