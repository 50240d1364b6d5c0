package network_test

import (
	"fmt"
	"os"

	"github.com/hbollon/go-edlib"

	"github.com/katalvlaran/strsimnet/network"
	"github.com/katalvlaran/strsimnet/sparse"
)

// ExampleFromCoo builds the similarity network of six short strings and
// prints it as compact GML and as clusters.
func ExampleFromCoo() {
	strs := []string{"AA", "AB", "XX", "XY", "YY", "QQ"}

	coo, err := sparse.Build(strs, 1, 1, edlib.LevenshteinDistance)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := network.FromCoo(coo, strs)
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = g.WriteGMLCompact(os.Stdout)
	fmt.Println()
	fmt.Println(g.Clusters())

	// Output:
	// graph[multigraph 0 node[id 0 label "AA"] node[id 1 label "AB"] node[id 2 label "XX"] node[id 3 label "XY"] node[id 4 label "YY"] node[id 5 label "QQ"] edge[source 1 target 0 weight 1] edge[source 3 target 2 weight 1] edge[source 4 target 3 weight 1]]
	// [[0 1] [2 3 4] [5]]
}
