// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for the guards shared by builders and converters.
//   - Return plain sentinels; call sites wrap them with their own tag.

package sparse

// isNaN reports whether v is a floating NaN. For integer kinds it is always false.
func isNaN[D Distance](v D) bool {
	return v != v
}

// validateBounds checks that [minDist, maxDist] is a usable closed window.
//
// Errors: ErrInvalidBounds when a bound is NaN or minDist > maxDist.
// Complexity: O(1).
func validateBounds[D Distance](minDist, maxDist D) error {
	if isNaN(minDist) || isNaN(maxDist) {
		return ErrInvalidBounds
	}
	if minDist > maxDist {
		return ErrInvalidBounds
	}

	return nil
}

// validateCoordinate checks 0 <= col < row < n.
//
// Errors: ErrOutOfRange for indices outside [0,n), ErrNotLowerTriangle for col >= row.
// Complexity: O(1).
func validateCoordinate[D Distance](c Coordinate[D], n int) error {
	if c.Row < 0 || c.Row >= n || c.Col < 0 || c.Col >= n {
		return ErrOutOfRange
	}
	if c.Col >= c.Row {
		return ErrNotLowerTriangle
	}

	return nil
}

// validateCSRArrays checks the row_ptr/col_indices invariants of a CSR,
// including the strict lower triangle every built matrix keeps.
//
// Errors: ErrBadShape (nRow < 0), ErrCorruptCSR, ErrNotLowerTriangle (col >= row).
// Complexity: O(n_row + nnz).
func validateCSRArrays(nRow, nValues int, colIndices, rowPtr []int) error {
	if nRow < 0 {
		return ErrBadShape
	}
	if len(rowPtr) != nRow+1 || len(colIndices) != nValues {
		return ErrCorruptCSR
	}
	if rowPtr[0] != 0 || rowPtr[nRow] != nValues {
		return ErrCorruptCSR
	}
	for r := 0; r < nRow; r++ {
		if rowPtr[r] > rowPtr[r+1] {
			return ErrCorruptCSR
		}
	}
	for r := 0; r < nRow; r++ {
		for _, c := range colIndices[rowPtr[r]:rowPtr[r+1]] {
			if c < 0 || c >= nRow {
				return ErrCorruptCSR
			}
			if c >= r {
				return ErrNotLowerTriangle
			}
		}
	}

	return nil
}
