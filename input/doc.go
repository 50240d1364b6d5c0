// SPDX-License-Identifier: MIT

// Package input loads the string list a similarity network is built from.
//
// One string per line. A leading UTF-8 byte order mark and a trailing
// carriage return on each line are removed. Empty lines are kept, since an
// empty string is a valid node, but the newline that terminates the last
// line does not produce an extra empty string.
//
//	f, err := input.Open("words.txt") // "-" reads stdin
//	if err != nil { ... }
//	defer f.Close()
//	lines, err := input.ReadLines(f, input.WithNormalizeNFC())
//
// With WithNormalizeNFC, every line is brought to Unicode normalization form
// C so that canonically equivalent spellings compare as equal strings.
package input
