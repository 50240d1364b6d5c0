// SPDX-License-Identifier: MIT
package metric

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/adrg/strutil/metrics"
	"github.com/hbollon/go-edlib"
)

// Levenshtein counts insertions, deletions and substitutions.
func Levenshtein(a, b string) int { return edlib.LevenshteinDistance(a, b) }

// DamerauLevenshtein additionally counts adjacent transpositions, without
// the restricted-edit limitation.
func DamerauLevenshtein(a, b string) int { return edlib.DamerauLevenshteinDistance(a, b) }

// OSA is the optimal string alignment (restricted Damerau-Levenshtein) distance.
func OSA(a, b string) int { return edlib.OSADamerauLevenshteinDistance(a, b) }

// Hamming counts differing positions. Strings of unequal rune length are
// incomparable and map to math.MaxInt.
func Hamming(a, b string) int {
	d, err := edlib.HammingDistance(a, b)
	if err != nil {
		return math.MaxInt
	}

	return d
}

// Jaro and Jaro-Winkler are scored in float64 end to end: a float32 score
// widened afterwards misses inclusive bounds such as 0.7 or 5/6.
var (
	jaro        = newJaro()
	jaroWinkler = newJaroWinkler()
)

func newJaro() *metrics.Jaro {
	m := metrics.NewJaro()
	m.CaseSensitive = true
	return m
}

func newJaroWinkler() *metrics.JaroWinkler {
	m := metrics.NewJaroWinkler()
	m.CaseSensitive = true
	return m
}

// Jaro returns the Jaro similarity in [0, 1].
func Jaro(a, b string) float64 { return jaro.Compare(a, b) }

// JaroWinkler returns the Jaro-Winkler similarity in [0, 1], with the
// common prefix bonus capped at four runes.
func JaroWinkler(a, b string) float64 { return jaroWinkler.Compare(a, b) }

// NormalizedLevenshtein returns 1 - Levenshtein/max(len), in [0, 1].
// Two empty strings are identical (1.0).
func NormalizedLevenshtein(a, b string) float64 {
	return normalize(Levenshtein(a, b), a, b)
}

// NormalizedDamerauLevenshtein returns 1 - DamerauLevenshtein/max(len).
func NormalizedDamerauLevenshtein(a, b string) float64 {
	return normalize(DamerauLevenshtein(a, b), a, b)
}

func normalize(d int, a, b string) float64 {
	n := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if n == 0 {
		return 1
	}

	return 1 - float64(d)/float64(n)
}

// Family classifies the codomain of an algorithm.
type Family int

const (
	// FamilyInteger covers edit-style distances with integer values.
	FamilyInteger Family = iota
	// FamilyUnit covers normalized similarity scores in [0, 1].
	FamilyUnit
)

// String implements fmt.Stringer.
func (f Family) String() string {
	if f == FamilyUnit {
		return "unit"
	}

	return "integer"
}

// Algorithm is a registered comparator. Exactly one of Int or Unit is set,
// matching Family.
type Algorithm struct {
	Name   string
	Family Family
	Int    func(a, b string) int
	Unit   func(a, b string) float64
}

// Algorithm names, as accepted on the command line.
const (
	NameLevenshtein                  = "levenshtein"
	NameDamerauLevenshtein           = "damerau_levenshtein"
	NameJaro                         = "jaro"
	NameJaroWinkler                  = "jaro_winkler"
	NameNormalizedDamerauLevenshtein = "normalized_damerau_levenshtein"
	NameNormalizedLevenshtein        = "normalized_levenshtein"
	NameOSA                          = "osa_distance"
	NameHamming                      = "hamming"
)

var registry = []Algorithm{
	{Name: NameLevenshtein, Family: FamilyInteger, Int: Levenshtein},
	{Name: NameDamerauLevenshtein, Family: FamilyInteger, Int: DamerauLevenshtein},
	{Name: NameJaro, Family: FamilyUnit, Unit: Jaro},
	{Name: NameJaroWinkler, Family: FamilyUnit, Unit: JaroWinkler},
	{Name: NameNormalizedDamerauLevenshtein, Family: FamilyUnit, Unit: NormalizedDamerauLevenshtein},
	{Name: NameNormalizedLevenshtein, Family: FamilyUnit, Unit: NormalizedLevenshtein},
	{Name: NameOSA, Family: FamilyInteger, Int: OSA},
	{Name: NameHamming, Family: FamilyInteger, Int: Hamming},
}

// Names lists the registered algorithm names in registration order.
func Names() []string {
	out := make([]string, len(registry))
	for i, a := range registry {
		out[i] = a.Name
	}

	return out
}

// Lookup resolves an algorithm by name.
//
// Errors: ErrUnknownAlgorithm.
func Lookup(name string) (Algorithm, error) {
	for _, a := range registry {
		if a.Name == name {
			return a, nil
		}
	}

	return Algorithm{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownAlgorithm)
}

// IntOracle returns the integer comparator registered under name.
//
// Errors: ErrUnknownAlgorithm, ErrWrongFamily.
func IntOracle(name string) (func(a, b string) int, error) {
	a, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if a.Family != FamilyInteger {
		return nil, fmt.Errorf("IntOracle(%q): %s family: %w", name, a.Family, ErrWrongFamily)
	}

	return a.Int, nil
}

// UnitOracle returns the unit-interval comparator registered under name.
//
// Errors: ErrUnknownAlgorithm, ErrWrongFamily.
func UnitOracle(name string) (func(a, b string) float64, error) {
	a, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if a.Family != FamilyUnit {
		return nil, fmt.Errorf("UnitOracle(%q): %s family: %w", name, a.Family, ErrWrongFamily)
	}

	return a.Unit, nil
}
