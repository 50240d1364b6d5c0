// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the builders and converters.
// This file holds ONLY the data model; construction lives in impl_*.go,
// errors in errors.go and configuration in options.go.
package sparse

import "golang.org/x/exp/constraints"

// Distance is the numeric codomain of an oracle: any integer or float kind.
// Integer kinds model edit distances, float kinds model normalized scores.
type Distance interface {
	constraints.Integer | constraints.Float
}

// Oracle computes the distance between two strings.
// It must be total (never fail, never panic) and safe for concurrent use:
// Build invokes it from several goroutines at once without locking.
type Oracle[D Distance] func(a, b string) D

// Coordinate is one retained pair.
// Row and Col are 0-based positions in the input list with Col < Row;
// Value is oracle(strings[Row], strings[Col]).
type Coordinate[D Distance] struct {
	Row   int // index of the later string
	Col   int // index of the earlier string
	Value D   // oracle distance
}

// Coo is a coordinate-list sparse matrix over an n×n pairing.
//
// A Coo owns its coordinates until it is consumed by ToCSR or
// network.FromCoo. After that every accessor sees an empty matrix and
// every further consumption reports ErrConsumed.
type Coo[D Distance] struct {
	n        int             // dimension (number of input strings)
	entries  []Coordinate[D] // row-major, no duplicate (row,col)
	consumed bool            // set once the entries have been handed out
}

// CSR is a compressed-row sparse matrix.
//
// Invariants (checked by Validate):
//   - len(rowPtr) == nRow+1, rowPtr[0] == 0, rowPtr[nRow] == len(values);
//   - rowPtr is non-decreasing;
//   - len(colIndices) == len(values) and every column lies in [0, nRow);
//   - values[rowPtr[r]:rowPtr[r+1]] are exactly the entries of row r.
type CSR[D Distance] struct {
	nRow       int
	values     []D
	colIndices []int
	rowPtr     []int
}
