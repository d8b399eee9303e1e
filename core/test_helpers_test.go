package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizcore/core"
)

// Node IDs shared by the tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

// NewSquare builds
//
//	A──1──B
//	│     │
//	4     2
//	│     │
//	D──3──C
func NewSquare(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []string{NodeA, NodeB, NodeC, NodeD} {
		require.NoError(t, g.AddNode(core.NewNode(id, 0, 0)), "AddNode(%s)", id)
	}
	MustConnect(t, g, NodeA, NodeB, 1)
	MustConnect(t, g, NodeB, NodeC, 2)
	MustConnect(t, g, NodeC, NodeD, 3)
	MustConnect(t, g, NodeD, NodeA, 4)

	return g
}

// MustConnect adds an edge and fails the test unless it was inserted.
func MustConnect(t *testing.T, g *core.Graph, a, b string, w int64) *core.Edge {
	t.Helper()

	e, err := g.Connect(a, b, w)
	require.NoError(t, err, "Connect(%s,%s,%d)", a, b, w)
	require.NotNil(t, e, "Connect(%s,%s,%d) ignored", a, b, w)

	return e
}

// EdgeIDs extracts edge IDs preserving order.
func EdgeIDs(edges []*core.Edge) []string {
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.ID)
	}

	return ids
}

// NodeIDs extracts node IDs preserving order.
func NodeIDs(nodes []*core.Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}

	return ids
}
