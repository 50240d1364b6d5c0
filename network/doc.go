// Package network defines the node-link view of a similarity matrix and its
// serializers.
//
// A Graph pairs every input string with its index (Node) and every retained
// coordinate with a weighted edge (Link). It is built once from a
// *sparse.Coo, which it consumes, and is read-only afterwards.
//
// Output formats:
//
//   - node-link JSON: {"nodes":[{"id","label"}...],"links":[{"source","target","weight"}...]},
//     the shape consumed by force-directed layout tools.
//   - GML, pretty (indented, one token pair per line) and compact (single line).
//
// Go strings are immutable, so node labels share storage with the caller's
// slice instead of being copied.
//
// For analysis the graph converts into a gonum weighted undirected graph;
// Clusters returns its connected components.
package network
