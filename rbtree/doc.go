// Package rbtree implements a red-black self-balancing binary search tree
// with insertion, deletion and invariant verification.
//
// Overview:
//
//   - Tree[T] stores unique values of any cmp.Ordered type. Inserting a value
//     that is already present is a no-op; the existing node wins.
//   - Insert attaches a red node and repairs the tree in three passes:
//     red uncle (recolor and climb), inner grandchild (rotate the parent),
//     outer grandchild (rotate the grandparent and swap colors).
//   - Delete uses the transplant scheme: a node with two children is replaced
//     by its in-order successor. When a black node leaves its slot the
//     "double black" deficit is resolved by fixDoubleBlack (red sibling,
//     black nephews, red outer/inner nephew).
//   - Verify walks the whole tree and returns a Report describing the first
//     violated property, or confirming validity together with the
//     black-height.
//
// Change notifications:
//
// Nodes carry no callbacks. Every Insert, Delete and Reset records the
// structural steps it performed (attach, recolor, rotate, transplant,
// detach) and triggers Tree.Changed once with a Change[T] when it returns.
// A renderer can replay Change.Steps to animate the operation.
//
//	t := rbtree.New[int]()
//	t.Changed().Hook(func(c rbtree.Change[int]) {
//	    fmt.Println(c.Op, c.Value, c.Rotations())
//	})
//	t.Insert(10)
//
// Complexity:
//
//   - Insert, Delete, Find: O(log n)
//   - Verify, Values:       O(n)
//
// Thread safety:
//
//   - A Tree is single-owner. Serialize all calls externally.
package rbtree
