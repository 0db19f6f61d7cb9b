// SPDX-License-Identifier: MIT

package core_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/netalgo/core"
)

func TestSequence_Restartable(t *testing.T) {
	s := core.NewSequence[int](0)
	_, ok := s.Last()
	assert.False(t, ok)

	for i := 1; i <= 3; i++ {
		s.Append(i * 10)
	}
	collect := func() []int {
		var out []int
		for _, v := range s.All() {
			out = append(out, v)
		}
		return out
	}
	first, second := collect(), collect()
	assert.Equal(t, []int{10, 20, 30}, first)
	assert.Empty(t, cmp.Diff(first, second), "second pass replays from the start")

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 30, last)
	assert.Equal(t, 20, s.At(1))

	for i := range s.All() {
		if i == 0 {
			break
		}
	}
}

func TestSnapshots_AreIndependent(t *testing.T) {
	g := square(t)
	pos := g.Positions()
	pf := core.SnapshotPositions(pos)
	ef := core.SnapshotEdges(g.Edges)
	gf := core.SnapshotGraph(g)

	pos[0] = r3.Vec{X: 100}
	g.Edges[0].Weight = 100
	g.Vertices[0].Size = 100

	assert.Equal(t, r3.Vec{}, pf[0])
	assert.Equal(t, core.DefaultEdgeWeight, ef[0].Weight)
	assert.Equal(t, core.DefaultVertexSize, gf.Vertices[0].Size)
	assert.Equal(t, core.DefaultEdgeWeight, gf.Edges[0].Weight)
}

func TestSequence_JSON(t *testing.T) {
	s := core.NewSequence[core.PositionFrame](2)
	s.Append(core.PositionFrame{{X: 1, Y: 2}})
	s.Append(core.PositionFrame{{X: 3, Y: 4}})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[[{"X":1,"Y":2,"Z":0}],[{"X":3,"Y":4,"Z":0}]]`, string(data))

	var back core.Sequence[core.PositionFrame]
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, 2, back.Len())
	assert.Equal(t, s.At(1), back.At(1))

	var empty *core.Sequence[int]
	data, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
