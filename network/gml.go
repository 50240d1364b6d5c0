// SPDX-License-Identifier: MIT

// Package network - GML writers.
//
// Pretty layout:
//
//	graph [
//	  multigraph 0
//	  node [
//	    id 0
//	    label "AA"
//	  ]
//	  edge [
//	    source 1
//	    target 0
//	    weight 1
//	  ]
//	]
//
// Compact layout (one line, blocks separated by a single space):
//
//	graph[multigraph 0 node[id 0 label "AA"] edge[source 1 target 0 weight 1]]
//
// Labels escape & and " as &amp; and &quot;, control characters as &#N;. Float weights use the shortest
// decimal form without exponent; integer weights print in base 10.
package network

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/strsimnet/sparse"
)

// writeGMLLabel writes s as the body of a GML string. & and " become
// entities and control characters become numeric references (&#10; for a
// newline), so a label never breaks the line structure of either layout.
func writeGMLLabel(bw *bufio.Writer, s string) {
	for len(s) > 0 {
		i := strings.IndexFunc(s, needsGMLEscape)
		if i < 0 {
			bw.WriteString(s)
			return
		}
		bw.WriteString(s[:i])
		switch c := s[i]; c {
		case '&':
			bw.WriteString("&amp;")
		case '"':
			bw.WriteString("&quot;")
		default:
			bw.WriteString("&#")
			bw.WriteString(strconv.Itoa(int(c)))
			bw.WriteByte(';')
		}
		s = s[i+1:]
	}
}

func needsGMLEscape(r rune) bool {
	return r == '&' || r == '"' || r < 0x20 || r == 0x7f
}

// formatWeight renders a distance for text formats.
func formatWeight[D sparse.Distance](v D) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	default:
		return strconv.FormatUint(rv.Uint(), 10)
	}
}

// WriteGML writes the graph as GML, indented when pretty is true.
// Output is buffered; the buffer is flushed before returning.
//
// Errors: ErrNilGraph; sink failures wrapping ErrWrite and the I/O error.
func (g *Graph[D]) WriteGML(w io.Writer, pretty bool) error {
	if g == nil {
		return fmt.Errorf("WriteGML: %w", ErrNilGraph)
	}

	// bufio.Writer keeps the first error; later writes become no-ops.
	bw := bufio.NewWriter(w)
	if pretty {
		g.writePretty(bw)
	} else {
		g.writeCompact(bw)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteGML: %w: %w", ErrWrite, err)
	}

	return nil
}

// WriteGMLPretty writes the indented GML form.
func (g *Graph[D]) WriteGMLPretty(w io.Writer) error { return g.WriteGML(w, true) }

// WriteGMLCompact writes the single-line GML form.
func (g *Graph[D]) WriteGMLCompact(w io.Writer) error { return g.WriteGML(w, false) }

func (g *Graph[D]) writePretty(bw *bufio.Writer) {
	bw.WriteString("graph [\n  multigraph 0\n")
	for _, n := range g.nodes {
		bw.WriteString("  node [\n    id ")
		bw.WriteString(strconv.Itoa(n.ID))
		bw.WriteString("\n    label \"")
		writeGMLLabel(bw, n.Label)
		bw.WriteString("\"\n  ]\n")
	}
	for _, l := range g.links {
		bw.WriteString("  edge [\n    source ")
		bw.WriteString(strconv.Itoa(l.Source))
		bw.WriteString("\n    target ")
		bw.WriteString(strconv.Itoa(l.Target))
		bw.WriteString("\n    weight ")
		bw.WriteString(formatWeight(l.Weight))
		bw.WriteString("\n  ]\n")
	}
	bw.WriteString("]\n")
}

func (g *Graph[D]) writeCompact(bw *bufio.Writer) {
	bw.WriteString("graph[multigraph 0")
	for _, n := range g.nodes {
		bw.WriteString(" node[id ")
		bw.WriteString(strconv.Itoa(n.ID))
		bw.WriteString(" label \"")
		writeGMLLabel(bw, n.Label)
		bw.WriteString("\"]")
	}
	for _, l := range g.links {
		bw.WriteString(" edge[source ")
		bw.WriteString(strconv.Itoa(l.Source))
		bw.WriteString(" target ")
		bw.WriteString(strconv.Itoa(l.Target))
		bw.WriteString(" weight ")
		bw.WriteString(formatWeight(l.Weight))
		bw.WriteString("]")
	}
	bw.WriteString("]")
}
