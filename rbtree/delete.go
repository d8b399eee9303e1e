package rbtree

import "go.uber.org/zap"

// Delete removes the node holding v and rebalances the tree.
//
// Returns the removed node (detached: its links are cleared) or nil when v
// is not present, in which case the tree is not modified.
//
// Complexity: O(log n)
func (t *Tree[T]) Delete(v T) *Node[T] {
	t.steps = nil

	// 1) Locate the node; a miss is a no-op.
	z := t.Find(v)
	if z == nil {
		t.emit(OpDelete, v, false)
		return nil
	}

	// y is the node actually spliced out of its position, x the node that
	// moves into y's old slot (possibly nil) and xParent its new parent.
	y := z
	yOriginalColor := y.color
	var x, xParent *Node[T]

	if z.left == nil || z.right == nil {
		// 2) Zero or one child: splice z out directly.
		if z.left == nil {
			x = z.right
		} else {
			x = z.left
		}
		xParent = z.parent
		t.transplant(z, x)
	} else {
		// 3) Two children: the in-order successor takes z's place.
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
			if x != nil {
				x.parent = y
			}
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		t.setColor(y, z.color)
	}
	t.size--
	t.record(Step[T]{Kind: StepDetach, Value: z.value, Color: z.color})

	// 4) Removing a black node leaves one path a black short.
	if yOriginalColor == Black {
		t.fixDoubleBlack(x, xParent)
	}

	// 5) The root is always black.
	if t.root != nil {
		t.setColor(t.root, Black)
	}

	z.left, z.right, z.parent = nil, nil, nil
	t.emit(OpDelete, v, true)

	return z
}

// transplant puts the subtree rooted at v into u's position. u keeps its own
// links; v (when non-nil) inherits u's parent.
func (t *Tree[T]) transplant(u, v *Node[T]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
		t.record(Step[T]{Kind: StepTransplant, Value: v.value, Color: v.color})
	} else {
		t.record(Step[T]{Kind: StepTransplant, Empty: true})
	}
}

// fixDoubleBlack resolves the missing black unit on the path through node,
// a child slot of parent (node may be nil). Recursion ends at the root.
func (t *Tree[T]) fixDoubleBlack(node, parent *Node[T]) {
	if parent == nil {
		return
	}
	isLeft := parent.left == node
	sibling := parent.left
	if isLeft {
		sibling = parent.right
	}

	// Case 1: red sibling. Rotate it above parent so node gets a black sibling.
	if sibling.IsRed() {
		t.log.Debug("delete fixup: red sibling", zap.Any("parent", parent.value))
		t.setColor(parent, Red)
		t.setColor(sibling, Black)
		if isLeft {
			t.leftRotate(parent)
		} else {
			t.rightRotate(parent)
		}
		t.fixDoubleBlack(node, parent)
		return
	}
	if sibling == nil {
		return
	}

	// Case 2: black sibling with black nephews. Push the deficit to parent.
	if sibling.left.IsBlack() && sibling.right.IsBlack() {
		t.log.Debug("delete fixup: black nephews", zap.Any("parent", parent.value))
		t.setColor(sibling, Red)
		if parent.IsRed() {
			t.setColor(parent, Black)
		} else {
			t.fixDoubleBlack(parent, parent.parent)
		}
		return
	}

	// Case 3: black sibling with at least one red nephew.
	outer, inner := sibling.right, sibling.left
	if !isLeft {
		outer, inner = sibling.left, sibling.right
	}

	if !outer.IsRed() && inner.IsRed() {
		// Inner nephew red: rotate it above the sibling to make it outer.
		t.log.Debug("delete fixup: inner red nephew", zap.Any("parent", parent.value))
		t.setColor(inner, Black)
		t.setColor(sibling, Red)
		if isLeft {
			t.rightRotate(sibling)
			sibling = parent.right
		} else {
			t.leftRotate(sibling)
			sibling = parent.left
		}
	}

	// Outer nephew red.
	t.log.Debug("delete fixup: outer red nephew", zap.Any("parent", parent.value))
	t.setColor(sibling, parent.color)
	t.setColor(parent, Black)
	if isLeft {
		t.setColor(sibling.right, Black)
		t.leftRotate(parent)
	} else {
		t.setColor(sibling.left, Black)
		t.rightRotate(parent)
	}
}
