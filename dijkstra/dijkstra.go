// Package dijkstra computes single-source shortest paths over a mutable
// core.Graph by repeated linear scans instead of a priority queue.
//
// Each round scans every edge still in the pool that touches a processed
// node, picks the cheapest cost+weight candidate and removes that edge from
// the pool, whether or not it improved the far endpoint. An edge is therefore
// considered at most once per run.
//
// Complexity:
//
//   - Time:  O(V·E) per run (at most E rounds, each scanning the pool).
//   - Space: O(V + E) for the processed set and the edge pool.
package dijkstra

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/vizcore/core"
)

// ShortestPath relaxes g from sourceID and returns the target node with its
// Cost and Parent fields describing the path found.
//
// Every node of g has its Cost/Parent overwritten: the source gets cost 0,
// reached nodes their path cost, the rest core.Unreached. Use Path to turn
// the parent chain into a node sequence.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. sourceID and targetID must be non-empty (ErrEmptyID).
//  3. Both must exist in g (ErrNodeNotFound).
//
// Returns ErrNoPath when the target's parent chain does not lead back to
// the source. A target equal to the source is returned with cost 0.
func ShortestPath(g *core.Graph, sourceID, targetID string, opts ...Option) (*core.Node, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if sourceID == "" || targetID == "" {
		return nil, ErrEmptyID
	}
	source, ok := g.FindNode(sourceID)
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "source %q", sourceID)
	}
	target, ok := g.FindNode(targetID)
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "target %q", targetID)
	}

	// 3) Run relaxation rounds until nothing is left to scan
	r := newRunner(g, source, cfg)
	r.process()

	// 4) Accept the target only if its chain ends at the source
	if !r.leadsToSource(target) {
		cfg.Logger.Debug("no path",
			zap.String("source", sourceID), zap.String("target", targetID))
		return nil, errors.Wrapf(ErrNoPath, "%q → %q", sourceID, targetID)
	}

	cfg.Logger.Debug("path found",
		zap.String("source", sourceID), zap.String("target", targetID), zap.Int64("cost", target.Cost))

	return target, nil
}

// runner holds the mutable state for a single relaxation run.
type runner struct {
	g       *core.Graph
	source  *core.Node
	options Options

	processed *linkedhashset.Set // node IDs in processing order
	pool      []*core.Edge       // unprocessed edges in insertion order
	rounds    int
}

// candidate is the cheapest relaxation found in one round.
type candidate struct {
	from, to *core.Node
	cost     int64
	edge     int // index into pool
}

func newRunner(g *core.Graph, source *core.Node, opts Options) *runner {
	r := &runner{
		g:         g,
		source:    source,
		options:   opts,
		processed: linkedhashset.New(),
		pool:      g.Edges(),
	}

	// 1) Every node is unreached without a parent, except the source.
	g.ClearPaths()
	source.Cost = 0

	// 2) Only the source is processed initially.
	r.processed.Add(source.ID)

	return r
}

// process repeats relaxation rounds while unprocessed nodes remain and the
// pool still holds an edge touching a processed node.
func (r *runner) process() {
	total := r.g.NodeCount()
	for r.processed.Size() < total {
		c, found := r.cheapest()
		if !found {
			return
		}
		r.rounds++
		r.relax(c)
	}
}

// cheapest scans processed nodes in processing order and, for each, the
// pool edges touching it in pool order. The first candidate with the
// smallest cost+weight wins.
func (r *runner) cheapest() (candidate, bool) {
	var (
		best  candidate
		found bool
	)

	for _, v := range r.processed.Values() {
		from, ok := r.g.FindNode(v.(string))
		if !ok {
			continue
		}
		for i, e := range r.pool {
			if !e.Touches(from.ID) {
				continue
			}
			cost := from.Cost + e.Weight
			if found && cost >= best.cost {
				continue
			}
			to, ok := r.g.FindNode(e.Other(from.ID))
			if !ok {
				continue
			}
			best = candidate{from: from, to: to, cost: cost, edge: i}
			found = true
		}
	}

	return best, found
}

// relax commits c when its far endpoint has no parent yet or c is strictly
// cheaper, then drops the scanned edge from the pool either way.
func (r *runner) relax(c candidate) {
	edge := r.pool[c.edge]

	// 1) Commit. The source never takes a parent.
	committed := false
	if c.to != r.source && (c.to.Parent == "" || c.cost < c.to.Cost) {
		c.to.Parent = c.from.ID
		c.to.Cost = c.cost
		r.processed.Add(c.to.ID)
		committed = true

		if r.options.OnCommit != nil {
			r.options.OnCommit(c.from, c.to, c.cost)
		}
	}

	r.options.Logger.Debug("relaxation round",
		zap.Int("round", r.rounds),
		zap.String("edge", edge.ID),
		zap.String("from", c.from.ID),
		zap.String("to", c.to.ID),
		zap.Int64("cost", c.cost),
		zap.Bool("committed", committed))

	// 2) Consume the edge.
	r.pool = append(r.pool[:c.edge], r.pool[c.edge+1:]...)
	if r.options.OnDiscard != nil {
		r.options.OnDiscard(edge)
	}
}

// leadsToSource walks n's parent chain. The walk is bounded by the node
// count so a corrupted chain cannot loop forever.
func (r *runner) leadsToSource(n *core.Node) bool {
	for steps := 0; steps <= r.g.NodeCount(); steps++ {
		if n.Parent == "" {
			return n.ID == r.source.ID
		}
		next, ok := r.g.FindNode(n.Parent)
		if !ok {
			return false
		}
		n = next
	}

	return false
}

// Path returns the nodes from the root of target's parent chain to target,
// as left by the last ShortestPath run.
//
// Errors:
//   - ErrNilGraph, ErrNilNode (core), ErrBrokenChain.
func Path(g *core.Graph, target *core.Node) ([]*core.Node, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if target == nil {
		return nil, core.ErrNilNode
	}

	var rev []*core.Node
	n := target
	for {
		rev = append(rev, n)
		if n.Parent == "" {
			break
		}
		if len(rev) > g.NodeCount() {
			return nil, errors.Wrapf(ErrBrokenChain, "cycle through %q", n.ID)
		}
		next, ok := g.FindNode(n.Parent)
		if !ok {
			return nil, errors.Wrapf(ErrBrokenChain, "parent %q of %q", n.Parent, n.ID)
		}
		n = next
	}

	path := make([]*core.Node, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, nil
}
