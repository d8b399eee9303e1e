package render

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/kr/text"

	"github.com/katalvlaran/vizcore/core"
	"github.com/katalvlaran/vizcore/dijkstra"
	"github.com/katalvlaran/vizcore/rbtree"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

// Empty is printed for an empty tree.
const Empty = "(empty)"

func pad(indent int) string {
	if indent < 0 {
		indent = 0
	}

	return strings.Repeat(" ", indent)
}

// Tree renders the subtree rooted at root, one node per line, children
// indented below their parent and tagged L or R:
//
//	2 (black)
//	  L 1 (black)
//	  R 4 (red)
//	    L 3 (black)
//	    R 5 (black)
//
// A node with a single child lists the absent one as "nil".
func Tree[T cmp.Ordered](root *rbtree.Node[T], indent int) string {
	if root == nil {
		return Empty + "\n"
	}

	return subtree(root, "", pad(indent))
}

func subtree[T cmp.Ordered](n *rbtree.Node[T], label, prefix string) string {
	out := fmt.Sprintf("%s%v (%s)\n", label, n.Value(), n.Color())
	if n.IsLeaf() {
		return out
	}

	for _, child := range []struct {
		label string
		node  *rbtree.Node[T]
	}{{"L ", n.Left()}, {"R ", n.Right()}} {
		if child.node == nil {
			out += text.Indent(child.label+"nil\n", prefix)
			continue
		}
		out += text.Indent(subtree(child.node, child.label, prefix), prefix)
	}

	return out
}

// Step renders a single recorded tree mutation.
func Step[T cmp.Ordered](s rbtree.Step[T]) string {
	switch {
	case s.Kind == rbtree.StepRecolor:
		return fmt.Sprintf("%s %v→%s", s.Kind, s.Value, s.Color)
	case s.Kind == rbtree.StepTransplant && s.Empty:
		return fmt.Sprintf("%s nil", s.Kind)
	default:
		return fmt.Sprintf("%s %v", s.Kind, s.Value)
	}
}

// Change renders a tree Change on one line, e.g.
//
//	insert 3: attach 3, recolor 2→black, rotate-left 1
//
// A change that did not apply is rendered as "insert 3: no-op".
func Change[T cmp.Ordered](c rbtree.Change[T]) string {
	head := c.Op.String()
	if c.Op != rbtree.OpReset {
		head = fmt.Sprintf("%s %v", head, c.Value)
	}
	if !c.Applied {
		return head + ": no-op"
	}
	if len(c.Steps) == 0 {
		return head
	}

	steps := make([]string, 0, len(c.Steps))
	for _, s := range c.Steps {
		steps = append(steps, Step(s))
	}

	return head + ": " + strings.Join(steps, ", ")
}

// Report renders a verification report.
func Report(r rbtree.Report) string {
	if !r.Valid {
		return "invalid: " + r.Message
	}
	if r.BlackHeight == 0 {
		return r.Message
	}

	return fmt.Sprintf("%s (black height %d)", r.Message, r.BlackHeight)
}

// Path renders nodes as "1 → 2 → 3 (cost 3)"; the cost is the last node's.
// An empty path renders as "no path".
func Path(nodes []*core.Node) string {
	if len(nodes) == 0 {
		return "no path"
	}

	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}

	return fmt.Sprintf("%s (cost %d)", strings.Join(ids, " → "), nodes[len(nodes)-1].Cost)
}

// Cost renders a node cost, "-" for unreached nodes.
func Cost(c int64) string {
	if c == dijkstra.NoPath {
		return "-"
	}

	return fmt.Sprint(c)
}

// Graph renders every node and edge of g in insertion order:
//
//	nodes (2):
//	  1 at (10, 10) cost 0
//	  2 at (50, 10) cost 3 via 1
//	edges (1):
//	  1-to-2 weight 3
func Graph(g *core.Graph, indent int) string {
	prefix := pad(indent)

	var nodes strings.Builder
	for _, n := range g.Nodes() {
		fmt.Fprintf(&nodes, "%s at (%g, %g) cost %s", n.ID, n.X, n.Y, Cost(n.Cost))
		if n.Parent != "" {
			fmt.Fprintf(&nodes, " via %s", n.Parent)
		}
		nodes.WriteByte('\n')
	}

	var edges strings.Builder
	for _, e := range g.Edges() {
		fmt.Fprintf(&edges, "%s weight %d\n", e.ID, e.Weight)
	}

	return fmt.Sprintf("nodes (%d):\n", g.NodeCount()) +
		text.Indent(nodes.String(), prefix) +
		fmt.Sprintf("edges (%d):\n", g.EdgeCount()) +
		text.Indent(edges.String(), prefix)
}

// GraphChange renders a graph Change on one line, e.g.
//
//	delete-node 3 (removed 1-to-3, 2-to-3)
func GraphChange(c core.Change) string {
	switch c.Op {
	case core.OpAddNode, core.OpMoveNode:
		return fmt.Sprintf("%s %s", c.Op, c.NodeID)
	case core.OpDeleteNode:
		if len(c.RemovedEdges) == 0 {
			return fmt.Sprintf("%s %s", c.Op, c.NodeID)
		}
		return fmt.Sprintf("%s %s (removed %s)", c.Op, c.NodeID, strings.Join(c.RemovedEdges, ", "))
	case core.OpAddEdge, core.OpDeleteEdge, core.OpSetWeight:
		return fmt.Sprintf("%s %s", c.Op, c.EdgeID)
	default:
		return c.Op.String()
	}
}
