package rbtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizcore/rbtree"
)

func TestVerify_Valid(t *testing.T) {
	tr := buildTree(10, 5, 15, 3, 7, 12, 18)

	r := tr.Verify()

	require.True(t, r.Valid, r.Message)
	assert.Equal(t, "tree is a valid red-black tree", r.Message)
	assert.Equal(t, 2, r.BlackHeight)
	assert.NoError(t, r.Err())
}

func TestVerify_Violations(t *testing.T) {
	tests := []struct {
		name  string
		build func(tr *rbtree.Tree[int])
		want  string
	}{
		{
			name: "red root",
			build: func(tr *rbtree.Tree[int]) {
				rbtree.NewLinked(tr, nil, 1, rbtree.Red, false)
			},
			want: "property violation: root is not black",
		},
		{
			name: "invalid color",
			build: func(tr *rbtree.Tree[int]) {
				root := rbtree.NewLinked(tr, nil, 2, rbtree.Black, false)
				rbtree.NewLinked(tr, root, 1, rbtree.Color(7), true)
			},
			want: "property violation: node 1 has invalid color invalid(7)",
		},
		{
			name: "red node with red child",
			build: func(tr *rbtree.Tree[int]) {
				root := rbtree.NewLinked(tr, nil, 10, rbtree.Black, false)
				red := rbtree.NewLinked(tr, root, 5, rbtree.Red, true)
				rbtree.NewLinked(tr, red, 3, rbtree.Red, true)
				rbtree.NewLinked(tr, root, 15, rbtree.Red, false)
			},
			want: "property violation: red node 5 has a red child",
		},
		{
			name: "broken parent pointer",
			build: func(tr *rbtree.Tree[int]) {
				root := rbtree.NewLinked(tr, nil, 10, rbtree.Black, false)
				l := rbtree.NewLinked(tr, root, 5, rbtree.Red, true)
				rbtree.NewLinked(tr, root, 15, rbtree.Red, false)
				rbtree.SetParent(l, nil)
			},
			want: "inconsistent parent pointer: left child of 10 has incorrect parent",
		},
		{
			name: "left child not smaller",
			build: func(tr *rbtree.Tree[int]) {
				root := rbtree.NewLinked(tr, nil, 10, rbtree.Black, false)
				rbtree.NewLinked(tr, root, 10, rbtree.Red, true)
			},
			want: "BST property violation: 10 is not smaller than ancestor 10",
		},
		{
			name: "grandchild breaks ancestor bound",
			build: func(tr *rbtree.Tree[int]) {
				root := rbtree.NewLinked(tr, nil, 10, rbtree.Black, false)
				l := rbtree.NewLinked(tr, root, 5, rbtree.Black, true)
				rbtree.NewLinked(tr, root, 15, rbtree.Black, false)
				rbtree.NewLinked(tr, l, 12, rbtree.Red, false)
			},
			want: "BST property violation: 12 is not smaller than ancestor 10",
		},
		{
			name: "right child smaller",
			build: func(tr *rbtree.Tree[int]) {
				root := rbtree.NewLinked(tr, nil, 10, rbtree.Black, false)
				rbtree.NewLinked(tr, root, 4, rbtree.Red, false)
			},
			want: "BST property violation: 4 is smaller than ancestor 10",
		},
		{
			name: "black height mismatch",
			build: func(tr *rbtree.Tree[int]) {
				root := rbtree.NewLinked(tr, nil, 10, rbtree.Black, false)
				rbtree.NewLinked(tr, root, 5, rbtree.Black, true)
			},
			want: "property violation: black height mismatch at node 10: left=1, right=0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := rbtree.New[int]()
			tc.build(tr)

			r := tr.Verify()

			assert.False(t, r.Valid)
			assert.Equal(t, tc.want, r.Message)
			assert.ErrorIs(t, r.Err(), rbtree.ErrInvalidTree)
		})
	}
}

func TestVerify_DetectsTamperedValue(t *testing.T) {
	tr := buildTree(10, 5, 15)
	require.True(t, tr.Verify().Valid)

	rbtree.SetValue(tr.Find(5), 20)

	assert.False(t, tr.Verify().Valid)
}

func TestVerify_DetectsTamperedColor(t *testing.T) {
	tr := buildTree(10, 5, 15, 3)
	require.True(t, tr.Verify().Valid)

	rbtree.SetColor(tr.Find(5), rbtree.Red) // 5 red with red child 3

	r := tr.Verify()
	assert.False(t, r.Valid)
	assert.Contains(t, r.Message, "red child")
}
