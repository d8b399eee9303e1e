// Package core provides the mutable in-memory graph the shortest-path
// visualizer edits: nodes placed by the user, undirected weighted edges
// between them, and the per-node Cost/Parent fields a shortest-path run
// writes back.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Undirected edges only, at most one per unordered node pair.
//     AddEdge silently ignores a second edge between the same pair.
//   - Non-negative integer weights (DefaultWeight = 1).
//   - Nodes are identified by caller-assigned string IDs.
//   - Deleting a node cascades to all incident edges.
//   - Insertion-ordered storage (gods linkedhashmap): Nodes(), Edges() and
//     FindNodeEdges() enumerate in the order things were added, which makes
//     algorithm tie-breaks reproducible.
//
// Path bookkeeping:
//
//	Node.Cost   – best known distance from the last source, Unreached (-1)
//	              when no run has reached the node.
//	Node.Parent – ID of the predecessor on that path, "" for none.
//
// Parent is an ID handle rather than a pointer, so deleting a node never
// leaves a dangling reference; DeleteNode also clears handles that named it.
//
// Change notifications:
//
//	g.Changed().Hook(func(c core.Change) { redraw() })
//
// Every successful mutation triggers exactly one Change after it completed.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrNilNode, ErrNilEdge, ErrEmptyNodeID, ErrNodeExists,
//	ErrNodeNotFound, ErrEdgeNotFound, ErrNegativeWeight.
//
// Thread safety:
//
//   - A Graph is single-owner; serialize mutations externally.
//
// Complexity:
//
//   - AddNode, FindNode, AddEdge, FindEdge, DeleteEdge: O(1)
//   - DeleteNode: O(V + E); FindNodeEdges, Edges: O(E)
package core
