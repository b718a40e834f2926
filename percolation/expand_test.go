package percolation_test

import (
	"testing"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinOpen_EmptyGrid needs a full column: N sites on an empty N×N grid.
func TestMinOpen_EmptyGrid(t *testing.T) {
	g := newGrid(t, 3)
	sites := g.MinOpenToPercolate()
	assert.Equal(t, []percolation.Site{{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}}, sites)
	assert.Equal(t, 0, g.OpenSites(), "MinOpenToPercolate must not open sites")
}

// TestMinOpen_AlreadyPercolates returns an empty, non-nil slice.
func TestMinOpen_AlreadyPercolates(t *testing.T) {
	g := newGrid(t, 1, percolation.Site{Row: 1, Col: 1})
	sites := g.MinOpenToPercolate()
	assert.NotNil(t, sites)
	assert.Empty(t, sites)
}

// TestMinOpen_SingleBlocked covers the 1×1 grid before opening.
func TestMinOpen_SingleBlocked(t *testing.T) {
	g := newGrid(t, 1)
	assert.Equal(t, []percolation.Site{{Row: 1, Col: 1}}, g.MinOpenToPercolate())
}

// TestMinOpen_UsesOpenSites prefers routes through already open sites.
//
// Grid (# = open):
//
//	. . . . .
//	# # # # .
//	. . . # .
//	. # # # .
//	. # . . .
func TestMinOpen_UsesOpenSites(t *testing.T) {
	g := newGrid(t, 5,
		percolation.Site{Row: 2, Col: 1}, percolation.Site{Row: 2, Col: 2},
		percolation.Site{Row: 2, Col: 3}, percolation.Site{Row: 2, Col: 4},
		percolation.Site{Row: 3, Col: 4},
		percolation.Site{Row: 4, Col: 2}, percolation.Site{Row: 4, Col: 3}, percolation.Site{Row: 4, Col: 4},
		percolation.Site{Row: 5, Col: 2},
	)
	require.False(t, g.Percolates())

	sites := g.MinOpenToPercolate()
	require.Len(t, sites, 1, "only a top-row site is missing")
	assert.Equal(t, 1, sites[0].Row)

	for _, s := range sites {
		require.NoError(t, g.Open(s.Row, s.Col))
	}
	assert.True(t, g.Percolates())
}

// TestMinOpen_Conn8 checks that diagonal steps count under Conn8.
func TestMinOpen_Conn8(t *testing.T) {
	g, err := percolation.New(3, percolation.WithConnectivity(percolation.Conn8))
	require.NoError(t, err)
	require.NoError(t, g.Open(1, 1))
	require.NoError(t, g.Open(3, 3))

	sites := g.MinOpenToPercolate()
	require.Len(t, sites, 1)
	assert.Equal(t, percolation.Site{Row: 2, Col: 2}, sites[0])
}
