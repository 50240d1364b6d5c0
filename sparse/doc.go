// Package sparse is the relational matrix engine of strsimnet: it evaluates
// a distance oracle over every unordered pair of an input string list and
// keeps the pairs whose distance falls inside a closed window.
//
// The package provides:
//
//   - Build: parallel all-pairs evaluation producing a coordinate-list (COO)
//     matrix restricted to the strict lower triangle (col < row).
//   - BuildLevenshtein: an accelerated constructor for small edit-distance
//     windows backed by an FST and a Levenshtein automaton. It yields exactly
//     the same coordinates, in the same order, as Build with an edit-distance
//     oracle.
//   - Coo.ToCSR: the counting-sort COO → CSR conversion (O(n_row + nnz)).
//   - CSR JSON encoding/decoding with the fields n_row, values, col_indices
//     and row_ptr.
//
// Ordering contract:
//
//	Coordinates of a built matrix are row-major: ascending row, then ascending
//	col. The order does not depend on the number of workers. ToCSR scatters
//	stably, so the column order inside every CSR row is ascending as well.
//
// Ownership:
//
//	A Coo is consumed exactly once, either by ToCSR or by network.FromCoo.
//	Any later consumption returns ErrConsumed.
//
// Quick example:
//
//	coo, _ := sparse.Build([]string{"AA", "AB", "XX"}, 1, 1, metric.Levenshtein)
//	csr, _ := coo.ToCSR(3)
//	_ = csr.WriteJSON(os.Stdout)
package sparse
