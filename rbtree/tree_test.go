// Package rbtree_test verifies insertion, deletion, queries and change
// notifications of the red-black tree.
package rbtree_test

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizcore/rbtree"
)

// shape renders the structure as "(value:color left right)" for exact
// structural comparisons.
func shape[T int | float64](n *rbtree.Node[T]) string {
	if n == nil {
		return "."
	}
	c := "B"
	if n.IsRed() {
		c = "R"
	}

	return fmt.Sprintf("(%v:%s %s %s)", n.Value(), c, shape(n.Left()), shape(n.Right()))
}

// requireValid fails the test with the verification message when the tree
// is not a valid red-black tree.
func requireValid[T int | float64](t *testing.T, tr *rbtree.Tree[T], context string) {
	t.Helper()
	r := tr.Verify()
	require.Truef(t, r.Valid, "%s: %s", context, r.Message)
}

func buildTree(values ...int) *rbtree.Tree[int] {
	tr := rbtree.New[int]()
	for _, v := range values {
		tr.Insert(v)
	}

	return tr
}

func TestTree_Empty(t *testing.T) {
	tr := rbtree.New[int]()

	assert.Nil(t, tr.Root())
	assert.Equal(t, 0, tr.Size())
	assert.Nil(t, tr.Find(1))
	assert.Nil(t, tr.Min())
	assert.Nil(t, tr.Max())
	assert.Empty(t, tr.Values())
	assert.Equal(t, 0, tr.Height())

	r := tr.Verify()
	assert.True(t, r.Valid)
	assert.Equal(t, "empty tree is valid", r.Message)
	assert.NoError(t, r.Err())
}

func TestInsert_RootIsBlack(t *testing.T) {
	tr := rbtree.New[int]()

	n, inserted := tr.Insert(10)
	require.True(t, inserted)
	assert.Same(t, n, tr.Root())
	assert.True(t, n.IsBlack())
	assert.Nil(t, n.Parent())
	assert.True(t, n.IsLeaf())
}

func TestInsert_Children(t *testing.T) {
	tr := buildTree(10, 5, 15)

	root := tr.Root()
	require.Equal(t, 10, root.Value())
	assert.Equal(t, 5, root.Left().Value())
	assert.Equal(t, 15, root.Right().Value())
	assert.True(t, root.Left().IsRed())
	assert.True(t, root.Right().IsRed())
	assert.Same(t, root, root.Left().Parent())
	assert.Same(t, root, root.Right().Parent())
}

func TestInsert_FixupCases(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{"red uncle recolors", []int{10, 5, 15, 1}, "(10:B (5:B (1:R . .) .) (15:B . .))"},
		{"left-left rotates grandparent", []int{30, 20, 10}, "(20:B (10:R . .) (30:R . .))"},
		{"right-right rotates grandparent", []int{10, 20, 30}, "(20:B (10:R . .) (30:R . .))"},
		{"left-right rotates twice", []int{30, 10, 20}, "(20:B (10:R . .) (30:R . .))"},
		{"right-left rotates twice", []int{10, 30, 20}, "(20:B (10:R . .) (30:R . .))"},
		{"deep inner grandchild", []int{10, 5, 15, 1, 3}, "(10:B (3:B (1:R . .) (5:R . .)) (15:B . .))"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := buildTree(tc.values...)
			if diff := cmp.Diff(tc.want, shape(tr.Root())); diff != "" {
				t.Errorf("shape mismatch (-want +got):\n%s", diff)
			}
			requireValid(t, tr, tc.name)
		})
	}
}

func TestInsert_DuplicateIsNoop(t *testing.T) {
	once := buildTree(8, 4, 12, 2, 6)
	twice := buildTree(8, 4, 12, 2, 6)

	existing := twice.Find(6)
	n, inserted := twice.Insert(6)

	assert.False(t, inserted)
	assert.Same(t, existing, n)
	assert.Equal(t, shape(once.Root()), shape(twice.Root()))
	assert.Equal(t, once.Size(), twice.Size())
}

func TestInsert_Sequences(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	random := make([]int, 500)
	for i := range random {
		random[i] = r.Intn(10_000)
	}

	ascending := make([]int, 200)
	descending := make([]int, 200)
	zigzag := make([]int, 0, 200)
	for i := range ascending {
		ascending[i] = i
		descending[i] = 200 - i
	}
	for i := 0; i < 100; i++ {
		zigzag = append(zigzag, i, 199-i)
	}

	sequences := map[string][]int{
		"ascending":  ascending,
		"descending": descending,
		"zigzag":     zigzag,
		"random":     random,
		"extremes":   {math.MaxInt64, math.MinInt64, 0, -1, 1, math.MaxInt64 - 1, math.MinInt64 + 1},
		"duplicates": {5, 5, 3, 3, 8, 8, 5, 1, 1},
	}

	for name, seq := range sequences {
		t.Run(name, func(t *testing.T) {
			tr := rbtree.New[int]()
			unique := map[int]bool{}
			for i, v := range seq {
				tr.Insert(v)
				unique[v] = true
				requireValid(t, tr, fmt.Sprintf("after insert #%d (%d)", i, v))
			}
			assert.Equal(t, len(unique), tr.Size())
			for v := range unique {
				assert.NotNil(t, tr.Find(v), "value %d must be findable", v)
			}
		})
	}
}

func TestInsert_HeightIsLogarithmic(t *testing.T) {
	tr := rbtree.New[int]()
	for i := 0; i < 1024; i++ {
		tr.Insert(i)
	}

	// A red-black tree with n nodes has height <= 2*log2(n+1).
	assert.LessOrEqual(t, tr.Height(), 2*int(math.Ceil(math.Log2(1025))))
}

func TestInsert_Floats(t *testing.T) {
	tr := rbtree.New[float64]()
	for _, v := range []float64{3.5, -1.25, 0, 2.75, 100.5, -50} {
		tr.Insert(v)
		requireValid(t, tr, fmt.Sprintf("after insert %v", v))
	}

	assert.Equal(t, []float64{-50, -1.25, 0, 2.75, 3.5, 100.5}, tr.Values())
}

func TestInsert_RejectsNaN(t *testing.T) {
	tr := rbtree.New[float64]()
	tr.Insert(1.5)

	var applied []bool
	tr.Changed().Hook(func(c rbtree.Change[float64]) { applied = append(applied, c.Applied) })

	for i := 0; i < 2; i++ {
		n, inserted := tr.Insert(math.NaN())
		assert.Nil(t, n)
		assert.False(t, inserted)
	}

	assert.Equal(t, 1, tr.Size())
	assert.Equal(t, []float64{1.5}, tr.Values())
	assert.Nil(t, tr.Find(math.NaN()))
	assert.Nil(t, tr.Delete(math.NaN()))
	assert.Equal(t, []bool{false, false, false}, applied)
	requireValid(t, tr, "after NaN inserts")
}

func TestQueries(t *testing.T) {
	tr := buildTree(50, 20, 80, 10, 30, 70, 90, 60)

	assert.Equal(t, 10, tr.Min().Value())
	assert.Equal(t, 90, tr.Max().Value())
	assert.Equal(t, []int{10, 20, 30, 50, 60, 70, 80, 90}, tr.Values())
	assert.Equal(t, 30, tr.Find(30).Value())
	assert.Nil(t, tr.Find(31))
}

func TestSibling(t *testing.T) {
	tr := buildTree(10, 5, 15)

	_, err := tr.Sibling(tr.Root())
	assert.ErrorIs(t, err, rbtree.ErrRootHasNoSibling)

	_, err = tr.Sibling(nil)
	assert.ErrorIs(t, err, rbtree.ErrNilNode)

	s, err := tr.Sibling(tr.Find(5))
	require.NoError(t, err)
	assert.Equal(t, 15, s.Value())

	s, err = tr.Sibling(tr.Find(15))
	require.NoError(t, err)
	assert.Equal(t, 5, s.Value())
}

func TestReset(t *testing.T) {
	tr := buildTree(1, 2, 3, 4)

	tr.Reset()

	assert.Nil(t, tr.Root())
	assert.Equal(t, 0, tr.Size())
	assert.True(t, tr.Verify().Valid)

	// The tree is reusable after a reset.
	tr.Insert(7)
	assert.Equal(t, []int{7}, tr.Values())
}

func TestChanged_Events(t *testing.T) {
	tr := rbtree.New[int]()

	var changes []rbtree.Change[int]
	tr.Changed().Hook(func(c rbtree.Change[int]) { changes = append(changes, c) })

	tr.Insert(10)
	tr.Insert(20)
	tr.Insert(30) // right-right: one rotation
	tr.Insert(20) // duplicate
	tr.Delete(99) // missing
	tr.Delete(10)
	tr.Reset()

	require.Len(t, changes, 7)

	assert.Equal(t, rbtree.OpInsert, changes[0].Op)
	assert.True(t, changes[0].Applied)
	require.NotEmpty(t, changes[0].Steps)
	assert.Equal(t, rbtree.StepAttach, changes[0].Steps[0].Kind)

	assert.Equal(t, 1, changes[2].Rotations())
	assert.Equal(t, rbtree.StepRotateLeft, changes[2].Steps[1].Kind)
	assert.Equal(t, 10, changes[2].Steps[1].Value)

	assert.False(t, changes[3].Applied)
	assert.Empty(t, changes[3].Steps)

	assert.Equal(t, rbtree.OpDelete, changes[4].Op)
	assert.False(t, changes[4].Applied)

	assert.True(t, changes[5].Applied)
	var kinds []string
	for _, s := range changes[5].Steps {
		kinds = append(kinds, s.Kind.String())
	}
	assert.Contains(t, strings.Join(kinds, ","), "detach")

	assert.Equal(t, rbtree.OpReset, changes[6].Op)
	assert.True(t, changes[6].Applied)
}

func TestColorAndOpStrings(t *testing.T) {
	assert.Equal(t, "red", rbtree.Red.String())
	assert.Equal(t, "black", rbtree.Black.String())
	assert.Equal(t, "invalid(9)", rbtree.Color(9).String())
	assert.Equal(t, "insert", rbtree.OpInsert.String())
	assert.Equal(t, "delete", rbtree.OpDelete.String())
	assert.Equal(t, "reset", rbtree.OpReset.String())
	assert.Equal(t, "rotate-right", rbtree.StepRotateRight.String())
}
