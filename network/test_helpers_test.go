// SPDX-License-Identifier: MIT
// Package network_test contains shared fixtures for the graph tests.

package network_test

import (
	"testing"

	"github.com/hbollon/go-edlib"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strsimnet/network"
	"github.com/katalvlaran/strsimnet/sparse"
)

var scenario = []string{"AA", "AB", "XX", "XY", "YY", "QQ"}

// scenarioGraph builds the six-string graph linked at edit distance exactly 1.
func scenarioGraph(t *testing.T) *network.Graph[int] {
	t.Helper()
	coo, err := sparse.Build(scenario, 1, 1, edlib.LevenshteinDistance)
	require.NoError(t, err)
	g, err := network.FromCoo(coo, scenario)
	require.NoError(t, err)

	return g
}

// errSink is a writer that always fails.
type errSink struct{ err error }

func (w errSink) Write([]byte) (int, error) { return 0, w.err }
