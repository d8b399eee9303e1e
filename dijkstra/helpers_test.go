package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizcore/core"
	"github.com/katalvlaran/vizcore/dijkstra"
)

// buildGraph creates nodes in the given order and connects them with
// weighted edges written as {a, b, w}.
func buildGraph(t *testing.T, ids []string, edges ...[3]any) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddNode(core.NewNode(id, 0, 0)))
	}
	for _, e := range edges {
		added, err := g.Connect(e[0].(string), e[1].(string), int64(e[2].(int)))
		require.NoError(t, err)
		require.NotNil(t, added)
	}

	return g
}

// triangle is 1-2 (1), 2-3 (2), 1-3 (4).
func triangle(t *testing.T) *core.Graph {
	return buildGraph(t, []string{"1", "2", "3"},
		[3]any{"1", "2", 1},
		[3]any{"2", "3", 2},
		[3]any{"1", "3", 4},
	)
}

// square is A-B (1), B-C (2), C-D (3), D-A (4).
func square(t *testing.T, extra ...string) *core.Graph {
	return buildGraph(t, append([]string{"A", "B", "C", "D"}, extra...),
		[3]any{"A", "B", 1},
		[3]any{"B", "C", 2},
		[3]any{"C", "D", 3},
		[3]any{"D", "A", 4},
	)
}

func pathIDs(t *testing.T, g *core.Graph, target *core.Node) []string {
	t.Helper()

	nodes, err := dijkstra.Path(g, target)
	require.NoError(t, err)

	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}

	return ids
}
