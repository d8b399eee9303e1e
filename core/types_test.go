// Package core_test verifies the graph model: node/edge lifecycle, the
// one-edge-per-pair invariant, cascading deletes and change notifications.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vizcore/core"
)

func TestNewNode(t *testing.T) {
	n := core.NewNode("7", 12.5, 40)

	assert.Equal(t, "7", n.ID)
	assert.Equal(t, 12.5, n.X)
	assert.Equal(t, 40.0, n.Y)
	assert.Equal(t, core.Unreached, n.Cost)
	assert.Empty(t, n.Parent)
	assert.False(t, n.Reached())

	n.SetPosition(1, 2)
	assert.Equal(t, 1.0, n.X)
	assert.Equal(t, 2.0, n.Y)
}

func TestNewEdge(t *testing.T) {
	e := core.NewEdge("1", "2", 5)

	assert.Equal(t, "1-to-2", e.ID)
	assert.Equal(t, int64(5), e.Weight)
	assert.True(t, e.Touches("1"))
	assert.True(t, e.Touches("2"))
	assert.False(t, e.Touches("3"))
	assert.Equal(t, "2", e.Other("1"))
	assert.Equal(t, "1", e.Other("2"))
	assert.Equal(t, "", e.Other("3"))
	assert.True(t, e.Joins("2", "1"))
	assert.False(t, e.Joins("1", "3"))
}

func TestChangeOpString(t *testing.T) {
	assert.Equal(t, "add-node", core.OpAddNode.String())
	assert.Equal(t, "delete-edge", core.OpDeleteEdge.String())
	assert.Equal(t, "move-node", core.OpMoveNode.String())
	assert.Equal(t, "reset", core.OpReset.String())
	assert.Equal(t, "unknown", core.ChangeOp(0).String())
}
