package rbtree

import "cmp"

// Node is a single element of a Tree. Fields are unexported: the tree is the
// only writer, callers navigate through the accessors below. All accessors
// are nil-safe so fixup code can ask a missing child for its color.
type Node[T cmp.Ordered] struct {
	value  T
	color  Color
	left   *Node[T]
	right  *Node[T]
	parent *Node[T] // navigation back-reference, not ownership
}

// Value returns the key stored in the node.
func (n *Node[T]) Value() T {
	if n == nil {
		var zero T
		return zero
	}

	return n.value
}

// Color returns the node color; nil nodes are Black.
func (n *Node[T]) Color() Color {
	if n == nil {
		return Black
	}

	return n.color
}

// IsRed reports whether n is a non-nil red node.
func (n *Node[T]) IsRed() bool { return n != nil && n.color == Red }

// IsBlack reports whether n is black. Nil children count as black.
func (n *Node[T]) IsBlack() bool { return n == nil || n.color == Black }

// Left returns the left child or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}

	return n.left
}

// Right returns the right child or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}

	return n.right
}

// Parent returns the parent or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	if n == nil {
		return nil
	}

	return n.parent
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// isLeftChild reports whether n hangs on its parent's left side.
func (n *Node[T]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// grandparent returns the parent's parent or nil.
func (n *Node[T]) grandparent() *Node[T] {
	if n.parent == nil {
		return nil
	}

	return n.parent.parent
}

// uncle returns the grandparent's other child.
func (n *Node[T]) uncle() *Node[T] {
	gp := n.grandparent()
	if gp == nil {
		return nil
	}
	if gp.left == n.parent {
		return gp.right
	}

	return gp.left
}
