package rbtree

import (
	"cmp"

	"github.com/emirpasic/gods/stacks/arraystack"
	"go.uber.org/zap"

	"github.com/katalvlaran/vizcore/event"
)

// Tree is a red-black binary search tree over ordered keys. Keys must be
// totally ordered; Insert rejects NaN.
//
// The tree is single-owner and not safe for concurrent use; callers
// serialize all mutations.
type Tree[T cmp.Ordered] struct {
	root *Node[T]
	size int

	log     *zap.Logger
	changed *event.Event[Change[T]]

	// steps collects the mutations of the operation in progress.
	steps []Step[T]
}

// New returns an empty Tree.
func New[T cmp.Ordered](opts ...Option) *Tree[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tree[T]{
		log:     cfg.Logger,
		changed: event.New[Change[T]](),
	}
}

// Changed is the event triggered once after every Insert, Delete and Reset.
func (t *Tree[T]) Changed() *event.Event[Change[T]] { return t.changed }

// Root returns the root node or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Size returns the number of stored values.
func (t *Tree[T]) Size() int { return t.size }

// Reset drops every node.
func (t *Tree[T]) Reset() {
	t.steps = nil
	applied := t.root != nil
	t.root = nil
	t.size = 0

	var zero T
	t.emit(OpReset, zero, applied)
}

// Find returns the node holding v, or nil.
//
// Complexity: O(log n)
func (t *Tree[T]) Find(v T) *Node[T] {
	n := t.root
	for n != nil && n.value != v {
		if v < n.value {
			n = n.left
		} else {
			n = n.right
		}
	}

	return n
}

// Min returns the node with the smallest value, or nil for an empty tree.
func (t *Tree[T]) Min() *Node[T] {
	if t.root == nil {
		return nil
	}

	return minimum(t.root)
}

// Max returns the node with the largest value, or nil for an empty tree.
func (t *Tree[T]) Max() *Node[T] {
	if t.root == nil {
		return nil
	}

	return maximum(t.root)
}

// Values returns all values in ascending order.
//
// Complexity: O(n)
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.size)
	stack := arraystack.New()
	n := t.root
	for n != nil || !stack.Empty() {
		for n != nil {
			stack.Push(n)
			n = n.left
		}
		top, _ := stack.Pop()
		n = top.(*Node[T])
		out = append(out, n.value)
		n = n.right
	}

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int { return height(t.root) }

func height[T cmp.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// Sibling returns the other child of n's parent, which may be nil.
// Asking for the sibling of the root is a contract violation and returns
// ErrRootHasNoSibling.
func (t *Tree[T]) Sibling(n *Node[T]) (*Node[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if n.parent == nil {
		return nil, ErrRootHasNoSibling
	}
	if n.parent.left == n {
		return n.parent.right, nil
	}

	return n.parent.left, nil
}

func minimum[T cmp.Ordered](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func maximum[T cmp.Ordered](n *Node[T]) *Node[T] {
	for n.right != nil {
		n = n.right
	}

	return n
}

// leftRotate pivots n down to the left; n's right child takes its place.
// No-op when n has no right child.
//
//	  n              r
//	 / \            / \
//	a   r    =>    n   c
//	   / \        / \
//	  b   c      a   b
func (t *Tree[T]) leftRotate(n *Node[T]) {
	r := n.right
	if r == nil {
		return
	}

	parent := n.parent
	r.parent = parent
	switch {
	case parent == nil:
		t.root = r
	case parent.left == n:
		parent.left = r
	default:
		parent.right = r
	}

	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}

	r.left = n
	n.parent = r

	t.record(Step[T]{Kind: StepRotateLeft, Value: n.value})
	t.log.Debug("rotate left", zap.Any("pivot", n.value), zap.Any("newTop", r.value))
}

// rightRotate is the mirror of leftRotate. No-op when n has no left child.
func (t *Tree[T]) rightRotate(n *Node[T]) {
	l := n.left
	if l == nil {
		return
	}

	parent := n.parent
	l.parent = parent
	switch {
	case parent == nil:
		t.root = l
	case parent.left == n:
		parent.left = l
	default:
		parent.right = l
	}

	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}

	l.right = n
	n.parent = l

	t.record(Step[T]{Kind: StepRotateRight, Value: n.value})
	t.log.Debug("rotate right", zap.Any("pivot", n.value), zap.Any("newTop", l.value))
}

// setColor recolors n and records the step when the color actually changes.
func (t *Tree[T]) setColor(n *Node[T], c Color) {
	if n == nil || n.color == c {
		return
	}
	n.color = c
	t.record(Step[T]{Kind: StepRecolor, Value: n.value, Color: c})
}

func (t *Tree[T]) record(s Step[T]) {
	t.steps = append(t.steps, s)
}

// emit publishes the collected steps and clears the buffer.
func (t *Tree[T]) emit(op Op, v T, applied bool) {
	steps := t.steps
	t.steps = nil
	t.changed.Trigger(Change[T]{Op: op, Value: v, Applied: applied, Steps: steps})
}
