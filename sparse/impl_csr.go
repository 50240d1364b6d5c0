// SPDX-License-Identifier: MIT

// Package sparse - COO → CSR conversion and CSR accessors.
//
// The conversion is the classic counting sort by row (scipy's coo_tocsr):
//
//  1. rowPtr[r] counts the entries of row r.
//  2. An exclusive prefix sum turns counts into start offsets; rowPtr[nRow]
//     is set to nnz explicitly.
//  3. Entries are scattered in their COO order into values/colIndices at a
//     per-row cursor. The cursor lives in its own array so rowPtr keeps its
//     offset form after the scatter.
//
// The scatter is stable: inside a row, entries keep their COO order. Since
// built matrices are row-major, CSR columns come out ascending per row.
//
// Complexity: O(n_row + nnz) time and space.
package sparse

import (
	"fmt"
	"iter"
	"slices"
)

// ToCSR consumes m and returns its compressed-row form with nRow rows.
//
// Implementation:
//   - Stage 1: validate receiver, nRow and every index against nRow
//     (before consuming, so a failed call leaves m intact).
//   - Stage 2: take ownership of the coordinates (m becomes empty).
//   - Stage 3: count, prefix-sum, scatter.
//
// Errors:
//   - ErrNilMatrix, ErrConsumed, ErrBadShape (nRow < 0),
//     ErrOutOfRange (an index >= nRow).
//
// Complexity:
//   - Time O(nRow + nnz), Space O(nRow + nnz).
func (m *Coo[D]) ToCSR(nRow int) (*CSR[D], error) {
	if m == nil {
		return nil, fmt.Errorf("ToCSR: %w", ErrNilMatrix)
	}
	if m.consumed {
		return nil, fmt.Errorf("ToCSR: %w", ErrConsumed)
	}
	if nRow < 0 {
		return nil, fmt.Errorf("ToCSR: n_row=%d: %w", nRow, ErrBadShape)
	}
	for i, c := range m.entries {
		if c.Row < 0 || c.Row >= nRow || c.Col < 0 || c.Col >= nRow {
			return nil, fmt.Errorf("ToCSR: entry %d (%d,%d) n_row=%d: %w", i, c.Row, c.Col, nRow, ErrOutOfRange)
		}
	}

	entries, err := m.Consume()
	if err != nil {
		return nil, fmt.Errorf("ToCSR: %w", err)
	}

	return cooToCSR(entries, nRow), nil
}

// cooToCSR performs the conversion on already validated coordinates.
func cooToCSR[D Distance](entries []Coordinate[D], nRow int) *CSR[D] {
	nnz := len(entries)

	// Stage 1: per-row counts.
	rowPtr := make([]int, nRow+1)
	for _, c := range entries {
		rowPtr[c.Row]++
	}

	// Stage 2: exclusive prefix sum; the last slot is nnz by definition.
	sum := 0
	for r := 0; r < nRow; r++ {
		count := rowPtr[r]
		rowPtr[r] = sum
		sum += count
	}
	rowPtr[nRow] = nnz

	// Stage 3: stable scatter through a separate cursor array.
	cursor := make([]int, nRow)
	copy(cursor, rowPtr[:nRow])
	values := make([]D, nnz)
	colIndices := make([]int, nnz)
	for _, c := range entries {
		dst := cursor[c.Row]
		values[dst] = c.Value
		colIndices[dst] = c.Col
		cursor[c.Row]++
	}

	return &CSR[D]{
		nRow:       nRow,
		values:     values,
		colIndices: colIndices,
		rowPtr:     rowPtr,
	}
}

// NewCSR assembles a CSR from raw arrays after checking every invariant.
// The slices are copied.
//
// Errors: ErrBadShape, ErrCorruptCSR.
func NewCSR[D Distance](nRow int, values []D, colIndices, rowPtr []int) (*CSR[D], error) {
	if err := validateCSRArrays(nRow, len(values), colIndices, rowPtr); err != nil {
		return nil, fmt.Errorf("NewCSR: n_row=%d nnz=%d: %w", nRow, len(values), err)
	}

	return &CSR[D]{
		nRow:       nRow,
		values:     slices.Clone(values),
		colIndices: slices.Clone(colIndices),
		rowPtr:     slices.Clone(rowPtr),
	}, nil
}

// NRow returns the number of rows.
func (m *CSR[D]) NRow() int {
	if m == nil {
		return 0
	}

	return m.nRow
}

// NNZ returns the number of stored entries.
func (m *CSR[D]) NNZ() int {
	if m == nil {
		return 0
	}

	return len(m.values)
}

// Values returns a copy of the value array.
func (m *CSR[D]) Values() []D {
	if m == nil {
		return nil
	}

	return slices.Clone(m.values)
}

// ColIndices returns a copy of the column index array.
func (m *CSR[D]) ColIndices() []int {
	if m == nil {
		return nil
	}

	return slices.Clone(m.colIndices)
}

// RowPtr returns a copy of the row offset array (length NRow()+1).
func (m *CSR[D]) RowPtr() []int {
	if m == nil {
		return nil
	}

	return slices.Clone(m.rowPtr)
}

// Row returns copies of the columns and values stored for row r.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *CSR[D]) Row(r int) ([]int, []D, error) {
	if m == nil {
		return nil, nil, fmt.Errorf("CSR.Row: %w", ErrNilMatrix)
	}
	if r < 0 || r >= m.nRow {
		return nil, nil, fmt.Errorf("CSR.Row(%d): %w", r, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[r], m.rowPtr[r+1]

	return slices.Clone(m.colIndices[lo:hi]), slices.Clone(m.values[lo:hi]), nil
}

// At looks up the value stored at (r, c). The boolean is false when the
// pair was not retained.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(entries in row r).
func (m *CSR[D]) At(r, c int) (D, bool, error) {
	var zero D
	if m == nil {
		return zero, false, fmt.Errorf("CSR.At: %w", ErrNilMatrix)
	}
	if r < 0 || r >= m.nRow || c < 0 || c >= m.nRow {
		return zero, false, fmt.Errorf("CSR.At(%d,%d): %w", r, c, ErrOutOfRange)
	}
	for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
		if m.colIndices[k] == c {
			return m.values[k], true, nil
		}
	}

	return zero, false, nil
}

// All re-expands the matrix into coordinates, row by row in storage order.
func (m *CSR[D]) All() iter.Seq[Coordinate[D]] {
	return func(yield func(Coordinate[D]) bool) {
		if m == nil {
			return
		}
		for r := 0; r < m.nRow; r++ {
			for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
				if !yield(Coordinate[D]{Row: r, Col: m.colIndices[k], Value: m.values[k]}) {
					return
				}
			}
		}
	}
}

// Validate checks the CSR invariants.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrCorruptCSR, ErrNotLowerTriangle.
// Complexity: O(n_row + nnz).
func (m *CSR[D]) Validate() error {
	if m == nil {
		return fmt.Errorf("CSR.Validate: %w", ErrNilMatrix)
	}
	if err := validateCSRArrays(m.nRow, len(m.values), m.colIndices, m.rowPtr); err != nil {
		return fmt.Errorf("CSR.Validate: %w", err)
	}

	return nil
}
