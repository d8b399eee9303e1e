// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
package core

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AddNode registers n in the graph.
//
// Implementation:
//   - Stage 1: Validate n is non-nil with a non-empty ID.
//   - Stage 2: Reject IDs already in use.
//   - Stage 3: Store n and publish OpAddNode.
//
// Returns:
//   - error: nil on success.
//
// Errors:
//   - ErrNilNode, ErrEmptyNodeID, ErrNodeExists.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodes.Get(n.ID); exists {
		return errors.Wrapf(ErrNodeExists, "id %q", n.ID)
	}

	g.nodes.Put(n.ID, n)
	g.log.Debug("node added", zap.String("id", n.ID))
	g.changed.Trigger(Change{Op: OpAddNode, NodeID: n.ID})

	return nil
}

// DeleteNode removes the node with the given ID together with every edge
// incident to it.
//
// Implementation:
//   - Stage 1: Resolve the node (ErrNodeNotFound).
//   - Stage 2: Remove incident edges in insertion order.
//   - Stage 3: Remove the node, clear dangling Parent handles, publish
//     OpDeleteNode listing the cascaded edges.
//
// Complexity:
//   - Time O(V + E), Space O(deg(id)).
func (g *Graph) DeleteNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.nodes.Get(id); !ok {
		return errors.Wrapf(ErrNodeNotFound, "id %q", id)
	}

	incident := g.FindNodeEdges(id)
	removed := make([]string, 0, len(incident))
	for _, e := range incident {
		g.edges.Remove(keyOf(e.Source, e.Target))
		removed = append(removed, e.ID)
	}
	g.nodes.Remove(id)

	// Parent handles pointing at the deleted node would describe a path
	// that no longer exists.
	for _, v := range g.nodes.Values() {
		if n := v.(*Node); n.Parent == id {
			n.Parent = ""
			n.Cost = Unreached
		}
	}

	g.log.Debug("node deleted", zap.String("id", id), zap.Strings("edges", removed))
	g.changed.Trigger(Change{Op: OpDeleteNode, NodeID: id, RemovedEdges: removed})

	return nil
}

// MoveNode repositions the node with the given ID and publishes
// OpMoveNode. Costs and parents are left untouched.
func (g *Graph) MoveNode(id string, x, y float64) error {
	n, ok := g.FindNode(id)
	if !ok {
		return errors.Wrapf(ErrNodeNotFound, "id %q", id)
	}

	n.SetPosition(x, y)
	g.log.Debug("node moved", zap.String("id", id), zap.Float64("x", x), zap.Float64("y", y))
	g.changed.Trigger(Change{Op: OpMoveNode, NodeID: id})

	return nil
}

// FindNode returns the node with the given ID.
// Complexity: O(1)
func (g *Graph) FindNode(id string) (*Node, bool) {
	v, ok := g.nodes.Get(id)
	if !ok {
		return nil, false
	}

	return v.(*Node), true
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes.Get(id)
	return ok
}

// Nodes returns all nodes in insertion order.
// Complexity: O(V)
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, g.nodes.Size())
	for _, v := range g.nodes.Values() {
		out = append(out, v.(*Node))
	}

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return g.nodes.Size() }
