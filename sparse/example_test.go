package sparse_test

import (
	"fmt"
	"os"

	"github.com/hbollon/go-edlib"

	"github.com/katalvlaran/strsimnet/sparse"
)

// ExampleBuild links strings that are exactly one edit apart and prints the
// compressed-row form.
func ExampleBuild() {
	strs := []string{"AA", "AB", "XX", "XY", "YY", "QQ"}

	coo, err := sparse.Build(strs, 1, 1, edlib.LevenshteinDistance)
	if err != nil {
		fmt.Println(err)
		return
	}
	for c := range coo.All() {
		fmt.Printf("%s-%s d=%d\n", strs[c.Row], strs[c.Col], c.Value)
	}

	csr, err := coo.ToCSR(len(strs))
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = csr.WriteJSON(os.Stdout)

	// Output:
	// AB-AA d=1
	// XY-XX d=1
	// YY-XY d=1
	// {"n_row":6,"values":[1,1,1],"col_indices":[0,2,3],"row_ptr":[0,0,1,1,2,3,3]}
}

// ExampleBuildLevenshtein uses the automaton-backed constructor.
func ExampleBuildLevenshtein() {
	coo, err := sparse.BuildLevenshtein([]string{"cat", "cart", "dog", "cast"}, 1, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	for c := range coo.All() {
		fmt.Println(c.Row, c.Col, c.Value)
	}

	// Output:
	// 1 0 1
	// 3 0 1
	// 3 1 1
}
