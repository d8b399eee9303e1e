// Package vizcore is the engine room of two small algorithm visualizers:
// a self-balancing red-black tree and a shortest-path demo over a graph the
// user edits by hand.
//
// What is inside?
//
//	rbtree/      generic red-black tree: insert, delete, verify, step records
//	core/        mutable undirected weighted graph, one edge per node pair
//	dijkstra/    linear-scan shortest-path relaxation writing Cost/Parent
//	event/       ordered, typed change notifications shared by both engines
//	render/      plain-text views of trees, changes, paths and graphs
//	scenario/    YAML scripts of engine operations with expectations
//	shell/       line-oriented command interpreter over both engines
//	config/      koanf layered settings and the zap root logger
//	cmd/vizcore  the terminal binary
//
// Both engines are single-owner and synchronous: every public operation runs
// to completion, then publishes exactly one change on its Changed event so a
// renderer can redraw.
//
// Quick ASCII example:
//
//	1──1──2
//	 \    │
//	  4   2
//	   \  │
//	      3
//
//	dijkstra.ShortestPath(g, "1", "3") reaches 3 via 2 with cost 3.
//
//	go run github.com/katalvlaran/vizcore/cmd/vizcore
package vizcore
