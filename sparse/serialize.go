// SPDX-License-Identifier: MIT

// Package sparse - CSR document encoding.
//
// Wire shape: {"n_row": int, "values": [...], "col_indices": [...], "row_ptr": [...]}
// Arrays are always present (an empty matrix writes [] rather than null).
// One document is written per call, followed by a newline.
package sparse

import (
	"encoding/json"
	"fmt"
	"io"
)

// csrDocument is the JSON view of a CSR.
type csrDocument[D Distance] struct {
	NRow       int   `json:"n_row"`
	Values     []D   `json:"values"`
	ColIndices []int `json:"col_indices"`
	RowPtr     []int `json:"row_ptr"`
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

// MarshalJSON implements json.Marshaler.
func (m *CSR[D]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("CSR.MarshalJSON: %w", ErrNilMatrix)
	}

	return json.Marshal(csrDocument[D]{
		NRow:       m.nRow,
		Values:     orEmpty(m.values),
		ColIndices: orEmpty(m.colIndices),
		RowPtr:     orEmpty(m.rowPtr),
	})
}

// WriteJSON writes the matrix as one JSON document to w.
//
// Errors:
//   - ErrNilMatrix.
//   - encoding errors (e.g. NaN values) are returned with context.
//   - sink failures are returned wrapping both ErrWrite and the I/O error.
func (m *CSR[D]) WriteJSON(w io.Writer) error {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Errorf("CSR.WriteJSON: %w", err)
	}
	b = append(b, '\n')
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("CSR.WriteJSON: %w: %w", ErrWrite, err)
	}

	return nil
}

// ReadCSRJSON decodes one CSR document from r and validates it.
//
// Errors: ErrDecode (malformed JSON), ErrCorruptCSR / ErrBadShape /
// ErrNotLowerTriangle (invariants).
func ReadCSRJSON[D Distance](r io.Reader) (*CSR[D], error) {
	var doc csrDocument[D]
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ReadCSRJSON: %w: %w", ErrDecode, err)
	}

	return NewCSR(doc.NRow, doc.Values, doc.ColIndices, doc.RowPtr)
}
