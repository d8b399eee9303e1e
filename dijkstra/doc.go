// Package dijkstra provides the shortest-path relaxation behind the graph
// visualizer: a Dijkstra-style search that scans edges linearly instead of
// using a priority queue, writing its result into the graph's nodes.
//
// Overview:
//
//   - ShortestPath(g, src, dst) resets every node, relaxes from src and
//     returns the dst node whose Parent chain spells the path back to src.
//   - Path(g, dst) turns that chain into a src→dst node slice for display.
//   - An unreachable target yields ErrNoPath; its Cost stays NoPath (-1).
//
// Algorithm:
//
//  1. Source cost 0, every other node Unreached with no parent.
//  2. processed = [source], pool = every edge in insertion order.
//  3. While a node is unprocessed and a pool edge touches a processed node:
//     pick the minimum processed.Cost + edge.Weight (first found wins ties),
//     commit when the far endpoint has no parent or the candidate is
//     strictly cheaper, then remove the edge from the pool regardless.
//  4. Walk the target's parent chain and check that it ends at the source.
//
// Each edge is scanned at most once per run. With non-negative weights the
// committed costs still form the shortest-path tree, because candidates are
// taken in non-decreasing cost order.
//
// Hooks:
//
//   - WithOnCommit(fn):  fn(from, to, cost) after each committed relaxation.
//   - WithOnDiscard(fn): fn(edge) for each edge leaving the pool.
//   - WithLogger(l):     one zap debug record per round.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyID, ErrNodeNotFound: invalid input, checked up front.
//   - ErrNoPath: target not connected to source.
//   - ErrBrokenChain: Path met a dangling parent handle or a cycle.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E)
//
// Thread safety:
//
//   - ShortestPath mutates node Cost/Parent; serialize it with other graph
//     mutations.
package dijkstra
