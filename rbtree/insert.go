package rbtree

import (
	"cmp"

	"go.uber.org/zap"
)

// Insert adds v to the tree and rebalances it.
//
// Returns the node that holds v and whether a new node was created. When an
// equal value is already present the tree is left untouched and the existing
// node is returned with inserted == false.
//
// NaN is not ordered against any value, including itself, so it is rejected:
// Insert returns (nil, false) and the tree is left untouched.
//
// Complexity: O(log n)
func (t *Tree[T]) Insert(v T) (node *Node[T], inserted bool) {
	t.steps = nil
	if isNaN(v) {
		t.log.Debug("insert rejected: unordered value")
		t.emit(OpInsert, v, false)
		return nil, false
	}
	if existing := t.Find(v); existing != nil {
		t.emit(OpInsert, v, false)
		return existing, false
	}

	// 1) Attach below the parent found by a plain BST descent.
	node = &Node[T]{value: v, color: Red}
	parent := t.locateParent(v)
	node.parent = parent
	switch {
	case parent == nil:
		t.root = node
	case v < parent.value:
		parent.left = node
	default:
		parent.right = node
	}
	t.size++
	t.record(Step[T]{Kind: StepAttach, Value: v, Color: Red})

	// 2) Restore the red-black properties.
	t.insertFixup(node)

	t.emit(OpInsert, v, true)

	return node, true
}

// isNaN reports whether v is a floating-point NaN, the only ordered value
// that is not equal to itself.
func isNaN[T cmp.Ordered](v T) bool {
	return v != v
}

// locateParent returns the node under which v would be attached, or nil for
// an empty tree. Equal values descend to the right.
func (t *Tree[T]) locateParent(v T) *Node[T] {
	var parent *Node[T]
	n := t.root
	for n != nil {
		parent = n
		if v < n.value {
			n = n.left
		} else {
			n = n.right
		}
	}

	return parent
}

// insertFixup runs the three repair passes in order and blackens the root.
func (t *Tree[T]) insertFixup(n *Node[T]) {
	n = t.fixRedUncle(n)
	n = t.fixInnerGrandchild(n)
	t.fixOuterGrandchild(n)
	t.setColor(t.root, Black)
}

// fixRedUncle pushes a red-red violation upwards while the uncle is red:
// parent and uncle turn black, the grandparent turns red and becomes the new
// current node. Returns the node where the violation (if any) remains.
func (t *Tree[T]) fixRedUncle(n *Node[T]) *Node[T] {
	for n != t.root && n.parent.IsRed() {
		gp := n.grandparent()
		if gp == nil {
			break
		}
		u := n.uncle()
		if !u.IsRed() {
			break
		}

		t.log.Debug("insert fixup: red uncle", zap.Any("node", n.value), zap.Any("grandparent", gp.value))
		t.setColor(n.parent, Black)
		t.setColor(u, Black)
		t.setColor(gp, Red)
		n = gp
	}

	return n
}

// fixInnerGrandchild turns an inner grandchild into an outer one by rotating
// its parent. Returns the node to hand to fixOuterGrandchild: the old parent
// after a rotation, n otherwise.
func (t *Tree[T]) fixInnerGrandchild(n *Node[T]) *Node[T] {
	if n == t.root || n.parent == nil || n.parent.IsBlack() {
		return n
	}
	p := n.parent
	gp := p.parent
	if gp == nil {
		return n
	}

	parentIsLeft := gp.left == p
	switch {
	case parentIsLeft && n == p.right:
		t.log.Debug("insert fixup: inner grandchild", zap.Any("node", n.value))
		t.leftRotate(p)
		return p
	case !parentIsLeft && n == p.left:
		t.log.Debug("insert fixup: inner grandchild", zap.Any("node", n.value))
		t.rightRotate(p)
		return p
	}

	return n
}

// fixOuterGrandchild rotates the grandparent away from an outer grandchild
// and swaps the colors of parent and grandparent.
func (t *Tree[T]) fixOuterGrandchild(n *Node[T]) {
	if n == t.root || n.parent == nil || n.parent.IsBlack() {
		return
	}
	p := n.parent
	gp := p.parent
	if gp == nil {
		return
	}

	parentIsLeft := gp.left == p
	switch {
	case parentIsLeft && n == p.left:
		t.log.Debug("insert fixup: outer grandchild", zap.Any("node", n.value))
		t.rightRotate(gp)
	case !parentIsLeft && n == p.right:
		t.log.Debug("insert fixup: outer grandchild", zap.Any("node", n.value))
		t.leftRotate(gp)
	default:
		return
	}
	t.setColor(p, Black)
	t.setColor(gp, Red)
}
