// SPDX-License-Identifier: MIT
package network_test

import (
	"testing"

	"github.com/hbollon/go-edlib"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strsimnet/network"
	"github.com/katalvlaran/strsimnet/sparse"
)

func TestFromCoo_Scenario(t *testing.T) {
	t.Parallel()

	g := scenarioGraph(t)
	require.Equal(t, 6, g.NodeCount())
	for i, n := range g.Nodes() {
		require.Equal(t, network.Node{ID: i, Label: scenario[i]}, n)
	}
	require.Equal(t, []network.Link[int]{
		{Source: 1, Target: 0, Weight: 1},
		{Source: 3, Target: 2, Weight: 1},
		{Source: 4, Target: 3, Weight: 1},
	}, g.Links())
	require.Equal(t, 0, g.Degree(5), "QQ is isolated")
	require.Equal(t, 2, g.Degree(3))
}

func TestFromCoo_ConsumesMatrix(t *testing.T) {
	t.Parallel()

	coo, err := sparse.Build(scenario, 1, 1, edlib.LevenshteinDistance)
	require.NoError(t, err)
	_, err = network.FromCoo(coo, scenario)
	require.NoError(t, err)
	require.True(t, coo.Consumed())

	_, err = network.FromCoo(coo, scenario)
	require.ErrorIs(t, err, sparse.ErrConsumed)
	_, err = coo.ToCSR(len(scenario))
	require.ErrorIs(t, err, sparse.ErrConsumed)
}

func TestFromCoo_Errors(t *testing.T) {
	t.Parallel()

	_, err := network.FromCoo[int](nil, scenario)
	require.ErrorIs(t, err, network.ErrNilMatrix)

	coo, err := sparse.Build(scenario, 1, 1, edlib.LevenshteinDistance)
	require.NoError(t, err)
	_, err = network.FromCoo(coo, scenario[:5])
	require.ErrorIs(t, err, network.ErrDimensionMismatch)
	require.False(t, coo.Consumed(), "a rejected conversion must not consume")
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	nodes := []network.Node{{ID: 0, Label: "a"}, {ID: 1, Label: "b"}}
	tests := []struct {
		name    string
		nodes   []network.Node
		links   []network.Link[float64]
		wantErr error
	}{
		{"id mismatch", []network.Node{{ID: 1, Label: "a"}}, nil, network.ErrUnknownNode},
		{"unknown target", nodes, []network.Link[float64]{{Source: 1, Target: 2}}, network.ErrUnknownNode},
		{"negative source", nodes, []network.Link[float64]{{Source: -1, Target: 0}}, network.ErrUnknownNode},
		{"self loop", nodes, []network.Link[float64]{{Source: 1, Target: 1}}, network.ErrSelfLoop},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := network.New(tc.nodes, tc.links)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	g, err := network.New(nodes, []network.Link[float64]{{Source: 1, Target: 0, Weight: 0.5}})
	require.NoError(t, err)
	require.Equal(t, 1, g.LinkCount())
}

func TestGraph_NilReceiver(t *testing.T) {
	t.Parallel()

	var g *network.Graph[int]
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.LinkCount())
	require.Nil(t, g.Nodes())
	require.Nil(t, g.Clusters())
	for range g.AllLinks() {
		t.Fatal("nil graph yields no links")
	}
}
