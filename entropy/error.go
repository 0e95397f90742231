// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrUnavailable indicates the OS entropy source could not be opened
	// or is not supported on this system.
	ErrUnavailable = ErrorKind("ErrUnavailable")

	// ErrReadFailed indicates reading from the OS entropy source failed.
	ErrReadFailed = ErrorKind("ErrReadFailed")

	// ErrShortRead indicates the OS entropy source returned fewer bytes
	// than requested.
	ErrShortRead = ErrorKind("ErrShortRead")

	// ErrCloseFailed indicates the OS entropy source could not be closed
	// after reading.
	ErrCloseFailed = ErrorKind("ErrCloseFailed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error reading the OS entropy source.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
