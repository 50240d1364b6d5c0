// Package metric adapts string comparators into total oracles for
// sparse.Build and resolves them by name.
//
// Two numeric families exist:
//
//   - Integer distances (levenshtein, damerau_levenshtein, osa_distance,
//     hamming). Bounds are non-negative integers.
//   - Unit-interval scores (jaro, jaro_winkler, normalized_levenshtein,
//     normalized_damerau_levenshtein). Bounds lie in [0, 1].
//
// Comparators come from github.com/hbollon/go-edlib and operate on runes.
// Partial comparators are made total here: Hamming maps strings of unequal
// length to math.MaxInt, which no sensible window contains.
package metric
