// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Invariant:
//   - At most one edge per unordered node pair. The store is keyed by the
//     normalized pair, so "a-to-b" and "b-to-a" collide by construction.
package core

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// pairKey is the normalized unordered endpoint pair used as edge store key.
type pairKey struct{ lo, hi string }

func keyOf(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// AddEdge inserts e unless an edge already joins the same unordered pair.
//
// Implementation:
//   - Stage 1: Validate e (ErrNilEdge) and its weight (ErrNegativeWeight).
//   - Stage 2: Resolve both endpoints (ErrNodeNotFound).
//   - Stage 3: Duplicate pair → silently ignored, returns (nil, nil).
//   - Stage 4: Derive a missing ID, store e, publish OpAddEdge.
//
// Returns:
//   - *Edge: e when inserted, nil when ignored as duplicate.
//   - error: validation failure.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddEdge(e *Edge) (*Edge, error) {
	if e == nil {
		return nil, ErrNilEdge
	}
	if e.Weight < 0 {
		return nil, errors.Wrapf(ErrNegativeWeight, "edge %s-%s weight=%d", e.Source, e.Target, e.Weight)
	}
	for _, id := range []string{e.Source, e.Target} {
		if !g.HasNode(id) {
			return nil, errors.Wrapf(ErrNodeNotFound, "edge endpoint %q", id)
		}
	}

	key := keyOf(e.Source, e.Target)
	if _, exists := g.edges.Get(key); exists {
		g.log.Debug("duplicate edge ignored", zap.String("source", e.Source), zap.String("target", e.Target))
		return nil, nil
	}

	if e.ID == "" {
		e.ID = EdgeID(e.Source, e.Target)
	}
	g.edges.Put(key, e)
	g.log.Debug("edge added", zap.String("id", e.ID), zap.Int64("weight", e.Weight))
	g.changed.Trigger(Change{Op: OpAddEdge, EdgeID: e.ID})

	return e, nil
}

// Connect is shorthand for AddEdge(NewEdge(source, target, weight)).
func (g *Graph) Connect(source, target string, weight int64) (*Edge, error) {
	return g.AddEdge(NewEdge(source, target, weight))
}

// DeleteEdge removes the edge joining e's endpoints, regardless of the
// orientation it was created with.
//
// Errors:
//   - ErrNilEdge, ErrEdgeNotFound.
//
// Complexity:
//   - Time O(1).
func (g *Graph) DeleteEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}

	return g.DeleteEdgeBetween(e.Source, e.Target)
}

// DeleteEdgeBetween removes the edge joining a and b.
func (g *Graph) DeleteEdgeBetween(a, b string) error {
	key := keyOf(a, b)
	v, ok := g.edges.Get(key)
	if !ok {
		return errors.Wrapf(ErrEdgeNotFound, "between %q and %q", a, b)
	}

	e := v.(*Edge)
	g.edges.Remove(key)
	g.log.Debug("edge deleted", zap.String("id", e.ID))
	g.changed.Trigger(Change{Op: OpDeleteEdge, EdgeID: e.ID})

	return nil
}

// FindEdge returns the edge joining a and b in either orientation.
// Complexity: O(1)
func (g *Graph) FindEdge(a, b string) (*Edge, bool) {
	v, ok := g.edges.Get(keyOf(a, b))
	if !ok {
		return nil, false
	}

	return v.(*Edge), true
}

// FindNodeEdges returns the edges incident to id in insertion order.
// An unknown id yields an empty slice.
// Complexity: O(E)
func (g *Graph) FindNodeEdges(id string) []*Edge {
	var out []*Edge
	for _, v := range g.edges.Values() {
		if e := v.(*Edge); e.Touches(id) {
			out = append(out, e)
		}
	}

	return out
}

// SetEdgeWeight changes the weight of the edge joining a and b.
//
// Errors:
//   - ErrNegativeWeight, ErrEdgeNotFound.
func (g *Graph) SetEdgeWeight(a, b string, weight int64) error {
	if weight < 0 {
		return errors.Wrapf(ErrNegativeWeight, "weight=%d", weight)
	}
	e, ok := g.FindEdge(a, b)
	if !ok {
		return errors.Wrapf(ErrEdgeNotFound, "between %q and %q", a, b)
	}

	e.Weight = weight
	g.log.Debug("edge weight set", zap.String("id", e.ID), zap.Int64("weight", weight))
	g.changed.Trigger(Change{Op: OpSetWeight, EdgeID: e.ID})

	return nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.edges.Size())
	for _, v := range g.edges.Values() {
		out = append(out, v.(*Edge))
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return g.edges.Size() }
