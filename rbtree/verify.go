package rbtree

import (
	"cmp"
	"fmt"
)

// Verify checks every red-black and BST property of the tree.
//
// Checked, in order:
//  1. the root is black;
//  2. every node carries a valid color;
//  3. a red node has no red child;
//  4. each child's parent reference points back at its parent;
//  5. BST ordering against all ancestors: left < node <= right;
//  6. both subtrees of every node have the same black-height.
//
// The first violation aborts the walk. The result is always a Report, never
// an error or a panic.
//
// Complexity: O(n) time, O(h) stack.
func (t *Tree[T]) Verify() Report {
	if t.root == nil {
		return Report{Valid: true, Message: "empty tree is valid"}
	}
	if t.root.color != Black {
		return Report{Message: "property violation: root is not black"}
	}
	if t.root.parent != nil {
		return Report{Message: fmt.Sprintf("inconsistent parent pointer: root %v has a parent", t.root.value)}
	}

	r := verifyNode(t.root, bounds[T]{})
	if !r.Valid {
		return r
	}
	r.Message = "tree is a valid red-black tree"

	return r
}

// bounds carries the open interval a subtree must respect.
// lo is inclusive (right subtrees may repeat the ancestor), hi exclusive.
type bounds[T cmp.Ordered] struct {
	lo, hi       T
	hasLo, hasHi bool
}

// verifyNode validates the subtree rooted at n and returns its black-height
// in Report.BlackHeight (nil leaves contribute 0).
func verifyNode[T cmp.Ordered](n *Node[T], b bounds[T]) Report {
	if n == nil {
		return Report{Valid: true}
	}

	if n.color != Red && n.color != Black {
		return Report{Message: fmt.Sprintf("property violation: node %v has invalid color %s", n.value, n.color)}
	}

	if n.color == Red && (n.left.IsRed() || n.right.IsRed()) {
		return Report{Message: fmt.Sprintf("property violation: red node %v has a red child", n.value)}
	}

	if n.left != nil && n.left.parent != n {
		return Report{Message: fmt.Sprintf("inconsistent parent pointer: left child of %v has incorrect parent", n.value)}
	}
	if n.right != nil && n.right.parent != n {
		return Report{Message: fmt.Sprintf("inconsistent parent pointer: right child of %v has incorrect parent", n.value)}
	}

	if b.hasLo && n.value < b.lo {
		return Report{Message: fmt.Sprintf("BST property violation: %v is smaller than ancestor %v", n.value, b.lo)}
	}
	if b.hasHi && n.value >= b.hi {
		return Report{Message: fmt.Sprintf("BST property violation: %v is not smaller than ancestor %v", n.value, b.hi)}
	}

	left := verifyNode(n.left, bounds[T]{lo: b.lo, hasLo: b.hasLo, hi: n.value, hasHi: true})
	if !left.Valid {
		return left
	}
	right := verifyNode(n.right, bounds[T]{lo: n.value, hasLo: true, hi: b.hi, hasHi: b.hasHi})
	if !right.Valid {
		return right
	}

	if left.BlackHeight != right.BlackHeight {
		return Report{Message: fmt.Sprintf(
			"property violation: black height mismatch at node %v: left=%d, right=%d",
			n.value, left.BlackHeight, right.BlackHeight,
		)}
	}

	bh := left.BlackHeight
	if n.color == Black {
		bh++
	}

	return Report{Valid: true, BlackHeight: bh}
}
