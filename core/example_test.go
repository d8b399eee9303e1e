package core_test

import (
	"fmt"

	"github.com/katalvlaran/vizcore/core"
)

// ExampleGraph_AddEdge shows that a second edge between the same pair of
// nodes is ignored, whatever its orientation.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_ = g.AddNode(core.NewNode("1", 10, 10))
	_ = g.AddNode(core.NewNode("2", 50, 10))

	first, _ := g.AddEdge(core.NewEdge("1", "2", 3))
	second, _ := g.AddEdge(core.NewEdge("2", "1", 7))

	fmt.Println(first.ID, second == nil, g.EdgeCount())
	// Output: 1-to-2 true 1
}

// ExampleGraph_DeleteNode removes a node and its incident edges.
func ExampleGraph_DeleteNode() {
	g := core.NewGraph()
	for _, id := range []string{"1", "2", "3"} {
		_ = g.AddNode(core.NewNode(id, 0, 0))
	}
	_, _ = g.Connect("1", "2", 1)
	_, _ = g.Connect("2", "3", 1)

	_ = g.DeleteNode("2")

	fmt.Println(g.NodeCount(), g.EdgeCount())
	// Output: 2 0
}
