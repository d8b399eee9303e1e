// File: types.go
// Role: Node, Edge, Graph, GraphOption, Change, sentinel errors and the
// NewGraph constructor.
package core

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/vizcore/event"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates a nil *Node was supplied.
	ErrNilNode = errors.New("core: node is nil")

	// ErrNilEdge indicates a nil *Edge was supplied.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeExists indicates AddNode was called with an ID already in use.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

const (
	// Unreached is the Cost of a node no shortest-path run has reached.
	Unreached int64 = -1

	// DefaultWeight is the weight of an edge created without an explicit one.
	DefaultWeight int64 = 1
)

// Node is a vertex of the graph.
//
// ID uniquely identifies the node. X and Y are owned by the renderer and
// ignored by every algorithm. Cost and Parent are written by shortest-path
// runs: Cost is the best known distance from the source (Unreached when
// none), Parent the ID of the predecessor on that path ("" when none).
type Node struct {
	ID string

	X, Y float64

	Cost   int64
	Parent string
}

// NewNode returns an unreached node at (x, y).
func NewNode(id string, x, y float64) *Node {
	return &Node{ID: id, X: x, Y: y, Cost: Unreached}
}

// SetPosition moves the node. Position never affects the algorithms.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
}

// Reached reports whether the last shortest-path run assigned a cost.
func (n *Node) Reached() bool { return n.Cost != Unreached }

// Edge is an undirected, weighted connection between two nodes.
//
// Source and Target are node IDs; their order only matters for the derived
// ID ("{source}-to-{target}"). A Graph holds at most one edge per unordered
// pair of nodes.
type Edge struct {
	ID     string
	Source string
	Target string
	Weight int64
}

// NewEdge returns an edge between source and target with its derived ID.
func NewEdge(source, target string, weight int64) *Edge {
	return &Edge{
		ID:     EdgeID(source, target),
		Source: source,
		Target: target,
		Weight: weight,
	}
}

// EdgeID derives the identifier of the edge source→target.
func EdgeID(source, target string) string {
	return fmt.Sprintf("%s-to-%s", source, target)
}

// Touches reports whether id is one of the endpoints.
func (e *Edge) Touches(id string) bool {
	return e.Source == id || e.Target == id
}

// Other returns the endpoint opposite to id. For an id that is not an
// endpoint it returns "".
func (e *Edge) Other(id string) string {
	switch id {
	case e.Source:
		return e.Target
	case e.Target:
		return e.Source
	default:
		return ""
	}
}

// Joins reports whether the edge connects a and b in either orientation.
func (e *Edge) Joins(a, b string) bool {
	return (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a)
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLogger attaches a logger for mutation records at debug level.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is the in-memory node/edge collection.
//
// Nodes and edges are kept in insertion order so that every enumeration,
// and therefore every algorithm tie-break, is deterministic.
//
// A Graph is single-owner and not safe for concurrent use.
type Graph struct {
	nodes *linkedhashmap.Map // node ID → *Node
	edges *linkedhashmap.Map // edge ID → *Edge

	log     *zap.Logger
	changed *event.Event[Change]
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:   linkedhashmap.New(),
		edges:   linkedhashmap.New(),
		log:     zap.NewNop(),
		changed: event.New[Change](),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ChangeOp identifies the mutation reported by a Change.
type ChangeOp uint8

const (
	OpAddNode ChangeOp = iota + 1
	OpDeleteNode
	OpAddEdge
	OpDeleteEdge
	OpSetWeight
	OpMoveNode
	OpReset
)

// String returns a short operation name.
func (o ChangeOp) String() string {
	switch o {
	case OpAddNode:
		return "add-node"
	case OpDeleteNode:
		return "delete-node"
	case OpAddEdge:
		return "add-edge"
	case OpDeleteEdge:
		return "delete-edge"
	case OpSetWeight:
		return "set-weight"
	case OpMoveNode:
		return "move-node"
	case OpReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change is published on Graph.Changed after each successful mutation.
// Cascaded edge removals of DeleteNode are listed in RemovedEdges.
type Change struct {
	Op           ChangeOp
	NodeID       string
	EdgeID       string
	RemovedEdges []string
}
