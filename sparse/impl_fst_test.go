// SPDX-License-Identifier: MIT
package sparse_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strsimnet/sparse"
)

func TestBuildLevenshtein_Scenario(t *testing.T) {
	t.Parallel()

	coo, err := sparse.BuildLevenshtein(scenario, 1, 1)
	require.NoError(t, err)
	require.Equal(t, len(scenario), coo.Dim())
	require.Equal(t, scenarioCoords, coo.Entries())
}

// TestBuildLevenshtein_MatchesBruteForce compares both constructors on
// inputs with duplicates, empty strings and multi-byte runes.
func TestBuildLevenshtein_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	inputs := map[string][]string{
		"dna":     randomStrings(21, 70, "ACGT", 6),
		"binary":  randomStrings(5, 50, "ab", 5),
		"unicode": append(randomStrings(9, 30, "aéß", 4), "", "", "é"),
	}
	bounds := []struct{ lo, hi int }{
		{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}, {0, 3},
	}
	for name, strs := range inputs {
		for _, b := range bounds {
			t.Run(fmt.Sprintf("%s/[%d,%d]", name, b.lo, b.hi), func(t *testing.T) {
				t.Parallel()
				want := mustBuild(t, strs, b.lo, b.hi, lev).Entries()
				got, err := sparse.BuildLevenshtein(strs, b.lo, b.hi, sparse.WithWorkers(3))
				require.NoError(t, err)
				require.Equal(t, len(want), got.Len())
				if len(want) > 0 {
					require.Equal(t, want, got.Entries())
				}
			})
		}
	}
}

func TestBuildLevenshtein_Duplicates(t *testing.T) {
	t.Parallel()

	strs := []string{"same", "same", "sane", "same"}
	coo, err := sparse.BuildLevenshtein(strs, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []sparse.Coordinate[int]{
		{Row: 1, Col: 0, Value: 0},
		{Row: 3, Col: 0, Value: 0},
		{Row: 3, Col: 1, Value: 0},
	}, coo.Entries())
}

func TestBuildLevenshtein_InvalidUTF8FallsBack(t *testing.T) {
	t.Parallel()

	strs := []string{"ab", "a\xff", "ac"}
	want := mustBuild(t, strs, 0, 1, lev).Entries()
	got, err := sparse.BuildLevenshtein(strs, 0, 1)
	require.NoError(t, err)
	require.Equal(t, want, got.Entries())
}

func TestBuildLevenshtein_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max int
		wantErr  error
	}{
		{"negative min", -1, 1, sparse.ErrInvalidBounds},
		{"inverted", 2, 1, sparse.ErrInvalidBounds},
		{"too large", 0, sparse.MaxAutomatonDistance + 1, sparse.ErrDistanceTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			coo, err := sparse.BuildLevenshtein(scenario, tc.min, tc.max)
			require.Nil(t, coo)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBuildLevenshtein_Progress(t *testing.T) {
	t.Parallel()

	calls := make(chan int, len(scenario))
	_, err := sparse.BuildLevenshtein(scenario, 1, 2, sparse.WithProgress(func(done, total int) {
		calls <- total
	}))
	require.NoError(t, err)
	close(calls)
	n := 0
	for total := range calls {
		require.Equal(t, len(scenario), total)
		n++
	}
	require.Equal(t, len(scenario), n)
}
