// SPDX-License-Identifier: MIT

// Package sparse - coordinate-list construction.
//
// Purpose:
//   - Evaluate an Oracle over the strict lower triangle of the N×N pairing.
//   - Keep (row, col, d) iff minDist <= d <= maxDist (inclusive both ends).
//
// Scheduling:
//   - Fork-join over rows with errgroup; at most `workers` rows run at once.
//   - Row r owns result slot r exclusively; nothing else is shared and written.
//   - Slots are concatenated in ascending row order after Wait, which pins
//     the output to row-major order regardless of the worker count.
//
// Complexity quicksheet:
//   - Build: N·(N-1)/2 oracle calls, O(N + nnz) extra memory.
package sparse

import (
	"fmt"
	"iter"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strsimnet/internal/logger"
)

// NewCoo wraps explicit coordinates into an n×n Coo.
// The entries are copied and sorted into row-major order.
//
// Errors:
//   - ErrBadShape if n < 0.
//   - ErrOutOfRange / ErrNotLowerTriangle for any coordinate outside 0 <= col < row < n.
//   - ErrDuplicateCoordinate if two entries share the same (row, col).
//
// Complexity: O(nnz log nnz).
func NewCoo[D Distance](n int, entries []Coordinate[D]) (*Coo[D], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewCoo: n=%d: %w", n, ErrBadShape)
	}
	for i, c := range entries {
		if err := validateCoordinate(c, n); err != nil {
			return nil, fmt.Errorf("NewCoo: entry %d (%d,%d): %w", i, c.Row, c.Col, err)
		}
	}

	own := slices.Clone(entries)
	slices.SortFunc(own, compareCoordinates[D])
	for i := 1; i < len(own); i++ {
		if own[i].Row == own[i-1].Row && own[i].Col == own[i-1].Col {
			return nil, fmt.Errorf("NewCoo: duplicate (%d,%d): %w", own[i].Row, own[i].Col, ErrDuplicateCoordinate)
		}
	}

	return &Coo[D]{n: n, entries: own}, nil
}

// Build evaluates oracle over every pair (row, col) with 0 <= col < row < len(strs)
// and keeps the pairs whose distance lies in [minDist, maxDist].
//
// Implementation:
//   - Stage 1: validate oracle and bounds.
//   - Stage 2: fan rows out to at most `workers` goroutines; each row scans col = 0..row-1.
//   - Stage 3: concatenate the per-row slots in row order.
//
// Errors:
//   - ErrNilOracle, ErrInvalidBounds.
//
// The oracle is assumed total: a panicking oracle aborts the whole build.
//
// Complexity:
//   - Time O(N²) oracle calls spread over the workers, Space O(N + nnz).
func Build[D Distance](strs []string, minDist, maxDist D, oracle Oracle[D], opts ...Option) (*Coo[D], error) {
	if oracle == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilOracle)
	}
	if err := validateBounds(minDist, maxDist); err != nil {
		return nil, fmt.Errorf("Build: [%v, %v]: %w", minDist, maxDist, err)
	}

	o := gatherOptions(opts...)
	started := time.Now()
	n := len(strs)
	slots := make([][]Coordinate[D], n)

	err := forEachRow(n, o, func(row int) error {
		slots[row] = scanRow(strs, row, minDist, maxDist, oracle)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	coo := &Coo[D]{n: n, entries: concatRows(slots)}
	logger.Debug("built coordinate matrix",
		"strings", n,
		"pairs", pairCount(n),
		"retained", len(coo.entries),
		"workers", o.workers,
		"elapsed", time.Since(started),
	)

	return coo, nil
}

// scanRow evaluates row against every earlier column in ascending order.
func scanRow[D Distance](strs []string, row int, minDist, maxDist D, oracle Oracle[D]) []Coordinate[D] {
	var out []Coordinate[D]
	a := strs[row]
	for col := 0; col < row; col++ {
		d := oracle(a, strs[col])
		if d >= minDist && d <= maxDist {
			out = append(out, Coordinate[D]{Row: row, Col: col, Value: d})
		}
	}

	return out
}

// forEachRow runs fn for rows 0..n-1 with at most o.workers in flight and
// reports progress after each row. The first error returned by fn is returned.
func forEachRow(n int, o Options, fn func(row int) error) error {
	var g errgroup.Group
	g.SetLimit(o.workers)

	var done atomic.Int64
	for row := 0; row < n; row++ {
		g.Go(func() error {
			if err := fn(row); err != nil {
				return err
			}
			o.progress(int(done.Add(1)), n)
			return nil
		})
	}

	return g.Wait()
}

// concatRows merges per-row slots into one row-major slice.
func concatRows[D Distance](slots [][]Coordinate[D]) []Coordinate[D] {
	total := 0
	for _, s := range slots {
		total += len(s)
	}
	out := make([]Coordinate[D], 0, total)
	for _, s := range slots {
		out = append(out, s...)
	}

	return out
}

// pairCount returns N·(N-1)/2, the number of pairs Build evaluates.
func pairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// PairCount reports how many oracle evaluations Build performs for n strings.
func PairCount(n int) int { return pairCount(n) }

func compareCoordinates[D Distance](a, b Coordinate[D]) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}

	return a.Col - b.Col
}

// Dim returns the dimension n of the n×n pairing (the input length).
func (m *Coo[D]) Dim() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Len returns the number of retained coordinates (nnz); 0 once consumed.
func (m *Coo[D]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Consumed reports whether the coordinates were already handed out.
func (m *Coo[D]) Consumed() bool {
	return m != nil && m.consumed
}

// All iterates the coordinates in row-major order without consuming them.
func (m *Coo[D]) All() iter.Seq[Coordinate[D]] {
	return func(yield func(Coordinate[D]) bool) {
		if m == nil {
			return
		}
		for _, c := range m.entries {
			if !yield(c) {
				return
			}
		}
	}
}

// Entries returns a copy of the coordinates.
func (m *Coo[D]) Entries() []Coordinate[D] {
	if m == nil {
		return nil
	}

	return slices.Clone(m.entries)
}

// Consume hands the coordinates over to the caller and empties the matrix.
// It is the one-way transfer used by ToCSR and network.FromCoo.
//
// Errors: ErrNilMatrix, ErrConsumed on the second call.
func (m *Coo[D]) Consume() ([]Coordinate[D], error) {
	if m == nil {
		return nil, fmt.Errorf("Coo.Consume: %w", ErrNilMatrix)
	}
	if m.consumed {
		return nil, fmt.Errorf("Coo.Consume: %w", ErrConsumed)
	}
	out := m.entries
	m.entries = nil
	m.consumed = true
	if out == nil {
		out = []Coordinate[D]{}
	}

	return out, nil
}
