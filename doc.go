// Package strsimnet turns a list of strings into a similarity network:
// every pair whose distance falls inside a window [min, max] becomes a
// weighted link between two string nodes.
//
// 🚀 What is in the box?
//
//	• sparse/ : parallel pairwise build into a lower-triangular COO matrix,
//	             automaton-accelerated Levenshtein build, COO → CSR, CSR JSON
//	• network/: node/link graph, node-link JSON, GML (pretty & compact),
//	             gonum export and connected-component clusters
//	• metric/ : named distance and similarity oracles, bound parsing
//	• input/  : line-per-string loader with BOM/CRLF handling and NFC
//	• cmd/strsimnet: the command-line tool
//
// Quick ASCII example (Hamming, window [1, 1]):
//
//	AA───AB    XX───XY───YY    QQ
//
// Library use:
//
//	coo, _ := sparse.Build(strs, 1, 1, metric.Hamming)
//	g, _ := network.FromCoo(coo, strs)
//	_ = g.WriteGMLPretty(os.Stdout)
//
// Command line:
//
//	go install github.com/katalvlaran/strsimnet/cmd/strsimnet@latest
//	strsimnet -a levenshtein -m 1 -M 2 -f json words.txt
package strsimnet
