// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every message is prefixed with "sparse: ..." so it can be grepped in logs.
// Return these sentinels directly or wrap them with fmt.Errorf("ctx: %w", ErrX);
// callers and tests match them with errors.Is.

package sparse

import "errors"

var (
	// ErrNilOracle indicates that Build was called without a distance oracle.
	ErrNilOracle = errors.New("sparse: distance oracle is nil")

	// ErrInvalidBounds indicates a distance window that cannot hold any value:
	// min > max, a NaN bound, or a negative bound where distances are counts.
	ErrInvalidBounds = errors.New("sparse: invalid distance bounds")

	// ErrDistanceTooLarge indicates that the automaton-backed constructor was
	// asked for an edit radius above MaxAutomatonDistance.
	ErrDistanceTooLarge = errors.New("sparse: edit distance too large for automaton")

	// ErrBadShape indicates a negative dimension (n or n_row).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNotLowerTriangle indicates a coordinate with col >= row.
	ErrNotLowerTriangle = errors.New("sparse: coordinate outside strict lower triangle")

	// ErrDuplicateCoordinate indicates two entries with the same (row, col).
	ErrDuplicateCoordinate = errors.New("sparse: duplicate coordinate")

	// ErrConsumed indicates that a Coo has already been converted and no
	// longer owns its coordinates.
	ErrConsumed = errors.New("sparse: coordinate matrix already consumed")

	// ErrNilMatrix indicates a nil *Coo or *CSR receiver.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrCorruptCSR indicates a CSR whose arrays violate the row_ptr invariants
	// (length, monotonicity, first/last offsets, column range).
	ErrCorruptCSR = errors.New("sparse: corrupt csr arrays")

	// ErrWrite indicates that serialization could not be written to the sink.
	// The underlying I/O error is wrapped alongside it.
	ErrWrite = errors.New("sparse: write failed")

	// ErrDecode indicates an input document that could not be decoded.
	ErrDecode = errors.New("sparse: decode failed")
)
