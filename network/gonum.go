// SPDX-License-Identifier: MIT
package network

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToWeightedUndirected copies the graph into a gonum weighted undirected
// graph. Node ids are preserved, link weights become float64 and absent
// edges report +Inf.
//
// Complexity: O(N + nnz).
func (g *Graph[D]) ToWeightedUndirected() *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	if g == nil {
		return wg
	}
	for _, n := range g.nodes {
		wg.AddNode(simple.Node(n.ID))
	}
	for _, l := range g.links {
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(l.Source), simple.Node(l.Target), float64(l.Weight)))
	}

	return wg
}

// Clusters returns the connected components as node id lists. Members are
// ascending and clusters are ordered by their smallest member, so the result
// is deterministic. Isolated nodes form singleton clusters.
func (g *Graph[D]) Clusters() [][]int {
	if g == nil || len(g.nodes) == 0 {
		return nil
	}
	components := topo.ConnectedComponents(g.ToWeightedUndirected())
	out := make([][]int, 0, len(components))
	for _, comp := range components {
		ids := make([]int, len(comp))
		for i, n := range comp {
			ids[i] = int(n.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })

	return out
}
