// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures for the matrix tests.
//
// Purpose:
//   - Provide the six-string scenario used across the suite.
//   - Provide a brute-force reference for the filter contract.

package sparse_test

import (
	"iter"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/hbollon/go-edlib"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strsimnet/sparse"
)

// scenario is the reference input: under edit distance with [1,1] only
// AA/AB, XX/XY and XY/YY are linked.
var scenario = []string{"AA", "AB", "XX", "XY", "YY", "QQ"}

// scenarioCoords is the expected row-major result for scenario with [1,1].
var scenarioCoords = []sparse.Coordinate[int]{
	{Row: 1, Col: 0, Value: 1},
	{Row: 3, Col: 2, Value: 1},
	{Row: 4, Col: 3, Value: 1},
}

func lev(a, b string) int { return edlib.LevenshteinDistance(a, b) }

// bruteForce enumerates the strict lower triangle sequentially.
func bruteForce[D sparse.Distance](strs []string, minDist, maxDist D, oracle sparse.Oracle[D]) []sparse.Coordinate[D] {
	var out []sparse.Coordinate[D]
	for row := range strs {
		for col := 0; col < row; col++ {
			d := oracle(strs[row], strs[col])
			if minDist <= d && d <= maxDist {
				out = append(out, sparse.Coordinate[D]{Row: row, Col: col, Value: d})
			}
		}
	}

	return out
}

// randomStrings returns n strings over alphabet with lengths in [0, maxLen].
// Duplicates are likely for small alphabets, which is intended.
func randomStrings(seed uint64, n int, alphabet string, maxLen int) []string {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	runes := []rune(alphabet)
	out := make([]string, n)
	for i := range out {
		var sb strings.Builder
		l := rng.IntN(maxLen + 1)
		for j := 0; j < l; j++ {
			sb.WriteRune(runes[rng.IntN(len(runes))])
		}
		out[i] = sb.String()
	}

	return out
}

// mustBuild builds a Coo or fails the test.
func mustBuild[D sparse.Distance](t testing.TB, strs []string, minDist, maxDist D, oracle sparse.Oracle[D], opts ...sparse.Option) *sparse.Coo[D] {
	t.Helper()
	coo, err := sparse.Build(strs, minDist, maxDist, oracle, opts...)
	require.NoError(t, err)

	return coo
}

// collect drains an iterator into a slice.
func collect[D sparse.Distance](seq iter.Seq[sparse.Coordinate[D]]) []sparse.Coordinate[D] {
	var out []sparse.Coordinate[D]
	for c := range seq {
		out = append(out, c)
	}

	return out
}
