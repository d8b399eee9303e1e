package core

import "github.com/katalvlaran/vizcore/event"

// Changed is the event triggered after every successful mutation.
func (g *Graph) Changed() *event.Event[Change] { return g.changed }

// Reset removes every node and edge.
func (g *Graph) Reset() {
	g.nodes.Clear()
	g.edges.Clear()
	g.log.Debug("graph reset")
	g.changed.Trigger(Change{Op: OpReset})
}

// ClearPaths forgets the result of the last shortest-path run: every node
// becomes unreached without a parent.
func (g *Graph) ClearPaths() {
	for _, n := range g.Nodes() {
		n.Cost = Unreached
		n.Parent = ""
	}
}
