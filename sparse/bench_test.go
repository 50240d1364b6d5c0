// Package sparse_test provides benchmarks for the matrix builders using
// deterministic random DNA-like inputs.
package sparse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strsimnet/sparse"
)

var benchSizes = []int{256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkCoo *sparse.Coo[int]
	sinkCSR *sparse.CSR[int]
)

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		strs := randomStrings(uint64(n), n, "ACGT", 10)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkCoo = mustBuild(b, strs, 0, 2, lev)
			}
		})
	}
}

// BenchmarkBuildLevenshtein compares the automaton path with the pairwise
// scan across radii; the crossover is FavorableAutomatonDistance.
func BenchmarkBuildLevenshtein(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		strs := randomStrings(uint64(n), n, "ACGT", 10)
		for radius := 1; radius <= sparse.MaxAutomatonDistance; radius++ {
			b.Run(fmt.Sprintf("n=%d/r=%d/automaton", n, radius), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					coo, err := sparse.BuildLevenshtein(strs, 0, radius)
					if err != nil {
						b.Fatal(err)
					}
					sinkCoo = coo
				}
			})
			b.Run(fmt.Sprintf("n=%d/r=%d/pairwise", n, radius), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sinkCoo = mustBuild(b, strs, 0, radius, lev)
				}
			})
		}
	}
}

func BenchmarkToCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		strs := randomStrings(uint64(n)+1, n, "AC", 6)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				coo := mustBuild(b, strs, 0, 2, lev)
				b.StartTimer()
				csr, err := coo.ToCSR(n)
				if err != nil {
					b.Fatal(err)
				}
				sinkCSR = csr
			}
		})
	}
}
