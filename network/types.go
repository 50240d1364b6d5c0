// SPDX-License-Identifier: MIT
package network

import "github.com/katalvlaran/strsimnet/sparse"

// Node is one input string and its position in the input.
type Node struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Link is one retained pair: Source is the coordinate row, Target its column.
type Link[D sparse.Distance] struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Weight D   `json:"weight"`
}

// Graph is an immutable list of nodes (in input order) and links (in
// coordinate order).
type Graph[D sparse.Distance] struct {
	nodes []Node
	links []Link[D]
}
