// Package dijkstra defines the sentinel errors, constants and functional
// options of the shortest-path relaxation over a core.Graph.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrEmptyID       if the source or target ID is empty.
//	– ErrNodeNotFound  if the source or target does not exist in the graph.
//	– ErrNoPath        if the target's parent chain does not end at the source.
//	– ErrBrokenChain   if Path meets a parent handle that names no node, or
//	                   a cycle.
package dijkstra

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/vizcore/core"
)

// Sentinel errors returned by ShortestPath and Path.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyID indicates that the source or target ID is empty.
	ErrEmptyID = errors.New("dijkstra: node ID is empty")

	// ErrNodeNotFound indicates that the source or target does not exist.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNoPath indicates the target is not connected to the source.
	ErrNoPath = errors.New("dijkstra: no path between source and target")

	// ErrBrokenChain indicates a parent chain that cannot be followed back
	// to a root.
	ErrBrokenChain = errors.New("dijkstra: broken parent chain")
)

// NoPath is the display value of an unreachable target's cost.
const NoPath int64 = core.Unreached

// CommitFunc observes a committed relaxation: to is now reached through from
// with the given total cost.
type CommitFunc func(from, to *core.Node, cost int64)

// DiscardFunc observes an edge leaving the unprocessed pool.
type DiscardFunc func(e *core.Edge)

// Options configures a ShortestPath run.
//
// Logger    – receives one debug record per relaxation round.
// OnCommit  – called after each committed relaxation.
// OnDiscard – called for each edge removed from the pool, committed or not.
type Options struct {
	Logger    *zap.Logger
	OnCommit  CommitFunc
	OnDiscard DiscardFunc
}

// Option is a functional option for ShortestPath.
type Option func(*Options)

// DefaultOptions returns a silent configuration without hooks.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger used for round-by-round debug records.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnCommit registers a hook for committed relaxations.
func WithOnCommit(fn CommitFunc) Option {
	return func(o *Options) { o.OnCommit = fn }
}

// WithOnDiscard registers a hook for edges leaving the pool.
func WithOnDiscard(fn DiscardFunc) Option {
	return func(o *Options) { o.OnDiscard = fn }
}
