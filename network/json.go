// SPDX-License-Identifier: MIT

// Package network - node-link JSON.
//
// Wire shape: {"nodes":[{"id":0,"label":"AA"}],"links":[{"source":1,"target":0,"weight":1}]}
// Arrays keep the graph's order and are never null. HTML characters in
// labels are written verbatim. Each document ends with a newline.
package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/strsimnet/sparse"
)

type nodeLinkDocument[D sparse.Distance] struct {
	Nodes []Node    `json:"nodes"`
	Links []Link[D] `json:"links"`
}

// encodeJSON renders v without HTML escaping.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writeAll writes b to w, tagging sink failures with ErrWrite.
func writeAll(w io.Writer, op string, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrWrite, err)
	}

	return nil
}

// WriteNodeLinkJSON writes the graph as one node-link JSON document.
//
// Errors: ErrNilGraph; encoding errors (e.g. NaN weights) with context;
// sink failures wrapping ErrWrite and the I/O error.
func (g *Graph[D]) WriteNodeLinkJSON(w io.Writer) error {
	if g == nil {
		return fmt.Errorf("WriteNodeLinkJSON: %w", ErrNilGraph)
	}
	doc := nodeLinkDocument[D]{Nodes: g.nodes, Links: g.links}
	if doc.Nodes == nil {
		doc.Nodes = []Node{}
	}
	if doc.Links == nil {
		doc.Links = []Link[D]{}
	}
	b, err := encodeJSON(doc)
	if err != nil {
		return fmt.Errorf("WriteNodeLinkJSON: %w", err)
	}

	return writeAll(w, "WriteNodeLinkJSON", b)
}

// ReadNodeLinkJSON decodes a node-link document and validates it with New.
//
// Errors: ErrDecode, ErrUnknownNode, ErrSelfLoop.
func ReadNodeLinkJSON[D sparse.Distance](r io.Reader) (*Graph[D], error) {
	var doc nodeLinkDocument[D]
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ReadNodeLinkJSON: %w: %w", ErrDecode, err)
	}

	return New(doc.Nodes, doc.Links)
}

// WriteClustersJSON writes the connected components as a JSON array of
// label arrays, ordered as Clusters orders them.
func (g *Graph[D]) WriteClustersJSON(w io.Writer) error {
	if g == nil {
		return fmt.Errorf("WriteClustersJSON: %w", ErrNilGraph)
	}
	clusters := g.Clusters()
	labels := make([][]string, len(clusters))
	for i, members := range clusters {
		labels[i] = make([]string, len(members))
		for j, id := range members {
			labels[i][j] = g.nodes[id].Label
		}
	}
	b, err := encodeJSON(labels)
	if err != nil {
		return fmt.Errorf("WriteClustersJSON: %w", err)
	}

	return writeAll(w, "WriteClustersJSON", b)
}
