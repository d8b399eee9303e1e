package rbtree

import "cmp"

// Test-only access to internals.

// LeftRotate exposes leftRotate.
func (t *Tree[T]) LeftRotate(n *Node[T]) { t.leftRotate(n) }

// RightRotate exposes rightRotate.
func (t *Tree[T]) RightRotate(n *Node[T]) { t.rightRotate(n) }

// NewLinked builds a node and links it under parent without any balancing.
// left selects the side; a nil parent makes the node the root.
func NewLinked[T cmp.Ordered](t *Tree[T], parent *Node[T], v T, c Color, left bool) *Node[T] {
	n := &Node[T]{value: v, color: c, parent: parent}
	switch {
	case parent == nil:
		t.root = n
	case left:
		parent.left = n
	default:
		parent.right = n
	}
	t.size++

	return n
}

// SetColor overwrites a node color without recording a step.
func SetColor[T cmp.Ordered](n *Node[T], c Color) { n.color = c }

// SetParent overwrites a parent link.
func SetParent[T cmp.Ordered](n, p *Node[T]) { n.parent = p }

// SetValue overwrites the stored value.
func SetValue[T cmp.Ordered](n *Node[T], v T) { n.value = v }
