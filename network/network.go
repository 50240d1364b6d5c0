// SPDX-License-Identifier: MIT
package network

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/strsimnet/sparse"
)

// FromCoo consumes coo and builds the node-link view over strs.
//
// Implementation:
//   - Stage 1: check coo and that len(strs) == coo.Dim().
//   - Stage 2: take the coordinates (coo is empty afterwards).
//   - Stage 3: node i = {i, strs[i]}; one link per coordinate, same order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, sparse.ErrConsumed.
//
// Complexity: O(N + nnz).
func FromCoo[D sparse.Distance](coo *sparse.Coo[D], strs []string) (*Graph[D], error) {
	if coo == nil {
		return nil, fmt.Errorf("FromCoo: %w", ErrNilMatrix)
	}
	if coo.Consumed() {
		return nil, fmt.Errorf("FromCoo: %w", sparse.ErrConsumed)
	}
	if len(strs) != coo.Dim() {
		return nil, fmt.Errorf("FromCoo: strings=%d dim=%d: %w", len(strs), coo.Dim(), ErrDimensionMismatch)
	}

	entries, err := coo.Consume()
	if err != nil {
		return nil, fmt.Errorf("FromCoo: %w", err)
	}

	nodes := make([]Node, len(strs))
	for i, s := range strs {
		nodes[i] = Node{ID: i, Label: s}
	}
	links := make([]Link[D], len(entries))
	for i, c := range entries {
		links[i] = Link[D]{Source: c.Row, Target: c.Col, Weight: c.Value}
	}

	return &Graph[D]{nodes: nodes, links: links}, nil
}

// New assembles a graph from explicit nodes and links. Node ids must equal
// their positions, every link endpoint must be a node id and no link may
// join a node to itself.
//
// Errors: ErrUnknownNode, ErrSelfLoop.
func New[D sparse.Distance](nodes []Node, links []Link[D]) (*Graph[D], error) {
	for i, n := range nodes {
		if n.ID != i {
			return nil, fmt.Errorf("New: node at %d has id %d: %w", i, n.ID, ErrUnknownNode)
		}
	}
	for i, l := range links {
		if l.Source < 0 || l.Source >= len(nodes) || l.Target < 0 || l.Target >= len(nodes) {
			return nil, fmt.Errorf("New: link %d (%d,%d): %w", i, l.Source, l.Target, ErrUnknownNode)
		}
		if l.Source == l.Target {
			return nil, fmt.Errorf("New: link %d (%d,%d): %w", i, l.Source, l.Target, ErrSelfLoop)
		}
	}

	return &Graph[D]{nodes: slices.Clone(nodes), links: slices.Clone(links)}, nil
}

// NodeCount returns the number of nodes.
func (g *Graph[D]) NodeCount() int {
	if g == nil {
		return 0
	}

	return len(g.nodes)
}

// LinkCount returns the number of links.
func (g *Graph[D]) LinkCount() int {
	if g == nil {
		return 0
	}

	return len(g.links)
}

// Nodes returns a copy of the nodes in input order.
func (g *Graph[D]) Nodes() []Node {
	if g == nil {
		return nil
	}

	return slices.Clone(g.nodes)
}

// Links returns a copy of the links in coordinate order.
func (g *Graph[D]) Links() []Link[D] {
	if g == nil {
		return nil
	}

	return slices.Clone(g.links)
}

// AllLinks iterates the links without copying.
func (g *Graph[D]) AllLinks() iter.Seq[Link[D]] {
	return func(yield func(Link[D]) bool) {
		if g == nil {
			return
		}
		for _, l := range g.links {
			if !yield(l) {
				return
			}
		}
	}
}

// Degree returns how many links touch node id (0 for unknown ids).
func (g *Graph[D]) Degree(id int) int {
	if g == nil {
		return 0
	}
	d := 0
	for _, l := range g.links {
		if l.Source == id {
			d++
		}
		if l.Target == id {
			d++
		}
	}

	return d
}
