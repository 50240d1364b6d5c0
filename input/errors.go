// SPDX-License-Identifier: MIT
// Package input: sentinel error set. Messages are prefixed "input: ...".

package input

import "errors"

var (
	// ErrLineTooLong indicates a line longer than the configured maximum.
	ErrLineTooLong = errors.New("input: line exceeds maximum length")

	// ErrRead indicates a failure of the underlying reader.
	ErrRead = errors.New("input: read failed")

	// ErrOpen indicates the source could not be opened.
	ErrOpen = errors.New("input: cannot open source")
)
