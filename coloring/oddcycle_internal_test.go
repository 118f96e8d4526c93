package coloring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpatterning/solvers/core"
)

func TestFindOddCycles_DetectsTriangle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("a", "b", 0)
	g.AddEdge("b", "c", 0)
	g.AddEdge("c", "a", 0)

	cycles, err := findOddCycles(g, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, cycles)
}

func TestFindOddCycles_BipartiteGraphHasNone(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("a", "x", 0)
	g.AddEdge("a", "y", 0)
	g.AddEdge("b", "x", 0)
	g.AddEdge("b", "y", 0)

	cycles, err := findOddCycles(g, 0)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

func TestAddOddCycleCut_TooShortCycleIsRejected(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("a", "b", 0)
	mdl, err := buildModel(g, K3, nil)
	require.NoError(t, err)

	assert.False(t, addOddCycleCut(mdl, oddCycle{"a", "b"}))
}

func TestEncodeDecodeColor_RoundTrip(t *testing.T) {
	for _, k := range []int{K3, K4} {
		max := k
		for c := 0; c < max; c++ {
			b1, b2 := encodeColor(k, c)
			assert.Equal(t, c, decodeColor(k, b1, b2))
		}
	}
}
