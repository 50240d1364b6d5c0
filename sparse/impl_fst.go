// SPDX-License-Identifier: MIT

// Package sparse - automaton-accelerated edit-distance construction.
//
// BuildLevenshtein produces the same coordinates as
//
//	Build(strs, minDist, maxDist, levenshtein)
//
// but avoids the quadratic scan when maxDist is small:
//
//   - The distinct input strings are compiled once into an FST (vellum);
//     each key maps to the ascending list of input indices holding it.
//   - For every row a Levenshtein DFA of radius maxDist is intersected with
//     the FST. Only keys within maxDist edits survive.
//   - Surviving indices below the row are rescored exactly (go-edlib), so
//     values are true distances and the minDist filter is honored.
//
// Keys and queries carry the same one-byte prefix. A shared prefix never
// changes an edit distance and keeps the empty string a non-empty key.
package sparse

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/blevesearch/vellum"
	"github.com/blevesearch/vellum/levenshtein"
	"github.com/hbollon/go-edlib"

	"github.com/katalvlaran/strsimnet/internal/logger"
)

const keyGuard = "\x01"

// fstIndex maps every distinct string to the input positions holding it.
type fstIndex struct {
	fst      *vellum.FST
	postings [][]int // postings[v] ascending; v is the FST value of the key
}

// newFSTIndex compiles strs into an FST. Keys are inserted in byte order as
// vellum requires.
func newFSTIndex(strs []string) (*fstIndex, error) {
	groups := make(map[string][]int, len(strs))
	for i, s := range strs {
		groups[s] = append(groups[s], i)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	postings := make([][]int, len(keys))
	for v, k := range keys {
		if err = builder.Insert([]byte(keyGuard+k), uint64(v)); err != nil {
			return nil, err
		}
		postings[v] = groups[k]
	}
	if err = builder.Close(); err != nil {
		return nil, err
	}
	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &fstIndex{fst: fst, postings: postings}, nil
}

// earlier calls visit for every indexed position below row whose key is
// accepted by aut.
func (ix *fstIndex) earlier(aut vellum.Automaton, row int, visit func(col int)) error {
	itr, err := ix.fst.Search(aut, nil, nil)
	for err == nil {
		_, v := itr.Current()
		for _, col := range ix.postings[v] {
			if col >= row {
				break
			}
			visit(col)
		}
		err = itr.Next()
	}
	if errors.Is(err, vellum.ErrIteratorDone) {
		return nil
	}

	return err
}

// exact calls visit for every earlier position holding exactly key.
func (ix *fstIndex) exact(key string, row int, visit func(col int)) error {
	v, ok, err := ix.fst.Get([]byte(keyGuard + key))
	if err != nil || !ok {
		return err
	}
	for _, col := range ix.postings[v] {
		if col >= row {
			break
		}
		visit(col)
	}

	return nil
}

func levenshteinOracle(a, b string) int { return edlib.LevenshteinDistance(a, b) }

// BuildLevenshtein is the accelerated constructor for an edit-distance
// window [minDist, maxDist] with a small maxDist.
//
// Implementation:
//   - Stage 1: validate bounds (0 <= minDist <= maxDist <= MaxAutomatonDistance).
//   - Stage 2: inputs with invalid UTF-8 take the brute-force path, because the
//     automaton works on code points.
//   - Stage 3: compile the FST and one shared (thread-safe) automaton builder.
//   - Stage 4: per row, collect candidate columns, sort them, rescore, filter.
//     A row whose DFA exceeds the automaton limits is scanned brute force.
//
// Errors:
//   - ErrInvalidBounds, ErrDistanceTooLarge, FST construction failures.
//
// Complexity:
//   - FST build O(total key bytes · log N); per row roughly proportional to
//     the visited automaton states plus the candidate count.
//   - DFA size and visited states grow steeply with maxDist. Beyond
//     FavorableAutomatonDistance the pairwise Build is usually faster.
func BuildLevenshtein(strs []string, minDist, maxDist int, opts ...Option) (*Coo[int], error) {
	if minDist < 0 || maxDist < 0 || minDist > maxDist {
		return nil, fmt.Errorf("BuildLevenshtein: [%d, %d]: %w", minDist, maxDist, ErrInvalidBounds)
	}
	if maxDist > MaxAutomatonDistance {
		return nil, fmt.Errorf("BuildLevenshtein: max=%d limit=%d: %w", maxDist, MaxAutomatonDistance, ErrDistanceTooLarge)
	}
	for _, s := range strs {
		if !utf8.ValidString(s) {
			logger.Debug("invalid utf-8 input, using brute-force construction")
			return Build(strs, minDist, maxDist, levenshteinOracle, opts...)
		}
	}

	o := gatherOptions(opts...)
	started := time.Now()
	n := len(strs)
	ix, err := newFSTIndex(strs)
	if err != nil {
		return nil, fmt.Errorf("BuildLevenshtein: fst: %w", err)
	}

	var lab *levenshtein.LevenshteinAutomatonBuilder
	if maxDist > 0 {
		lab, err = levenshtein.NewLevenshteinAutomatonBuilder(uint8(maxDist), false)
		if err != nil {
			return nil, fmt.Errorf("BuildLevenshtein: automaton: %w", err)
		}
	}

	slots := make([][]Coordinate[int], n)
	var fallbacks atomic.Int64
	err = forEachRow(n, o, func(row int) error {
		var cols []int
		collect := func(col int) { cols = append(cols, col) }

		if lab == nil {
			if err := ix.exact(strs[row], row, collect); err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
		} else {
			dfa, err := lab.BuildDfa(keyGuard+strs[row], uint8(maxDist))
			if err != nil {
				slots[row] = scanRow(strs, row, minDist, maxDist, levenshteinOracle)
				fallbacks.Add(1)
				return nil
			}
			if err = ix.earlier(dfa, row, collect); err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
		}

		slices.Sort(cols)
		var out []Coordinate[int]
		for _, col := range cols {
			d := levenshteinOracle(strs[row], strs[col])
			if d >= minDist && d <= maxDist {
				out = append(out, Coordinate[int]{Row: row, Col: col, Value: d})
			}
		}
		slots[row] = out
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("BuildLevenshtein: %w", err)
	}

	coo := &Coo[int]{n: n, entries: concatRows(slots)}
	logger.Debug("built coordinate matrix with automaton",
		"strings", n,
		"distinct", len(ix.postings),
		"retained", len(coo.entries),
		"max_dist", maxDist,
		"fallback_rows", fallbacks.Load(),
		"elapsed", time.Since(started),
	)

	return coo, nil
}
