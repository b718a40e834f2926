package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// New constructs an N×N Grid with every site blocked.
// Virtual top (0) is joined to every row-1 site in both unionfind
// structures; virtual bottom (N²+1) is joined to every row-N site in the
// percolation structure only.
// Returns ErrInvalidSize if n < 1, ErrInvalidConnectivity for an unknown
// Connectivity option.
// Complexity: O(N²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	offsets, err := neighborOffsets(o.Conn)
	if err != nil {
		return nil, err
	}

	sites := n * n
	perc, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}
	full, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}
	g := &Grid{
		n:       n,
		open:    make([]bool, sites+1),
		perc:    perc,
		full:    full,
		conn:    o.Conn,
		offsets: offsets,
	}

	for c := 1; c <= n; c++ {
		if err = g.union(g.top(), g.index(1, c)); err != nil {
			return nil, err
		}
		if err = g.perc.Union(g.index(n, c), g.bottom()); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// neighborOffsets returns the (dRow, dCol) pairs for c.
func neighborOffsets(c Connectivity) ([][2]int, error) {
	switch c {
	case Conn4:
		return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}, nil
	case Conn8:
		return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidConnectivity, c)
	}
}

// Size returns N.
func (g *Grid) Size() int {
	return g.n
}

// Connectivity returns the neighbor connectivity the Grid was built with.
func (g *Grid) Connectivity() Connectivity {
	return g.conn
}

// OpenSites returns the number of open sites.
func (g *Grid) OpenSites() int {
	return g.openCount
}

// Open opens site (row, col) and joins it with every open neighbor in both
// unionfind structures. Opening an already open site is a no-op.
// Returns ErrOutOfBounds, before any mutation, if the site is outside the grid.
// Complexity: O(α(N²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	idx := g.index(row, col)
	if g.open[idx] {
		return nil
	}
	g.open[idx] = true
	g.openCount++

	for _, d := range g.offsets {
		r, c := row+d[0], col+d[1]
		if !g.inBounds(r, c) {
			continue
		}
		nb := g.index(r, c)
		if !g.open[nb] {
			continue
		}
		if err := g.union(idx, nb); err != nil {
			return err
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and connected to the top
// row. Only the structure without the virtual bottom is consulted.
// Complexity: O(α(N²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	open, err := g.IsOpen(row, col)
	if err != nil || !open {
		return false, err
	}

	return g.full.Connected(g.top(), g.index(row, col))
}

// Percolates reports whether some bottom-row site is full.
// A 1×1 grid has its single site joined to both virtual vertices at
// construction, so it percolates exactly when that site is open.
func (g *Grid) Percolates() bool {
	if g.n == 1 {
		return g.open[1]
	}
	ok, _ := g.perc.Connected(g.top(), g.bottom())

	return ok
}

// union applies one join to both unionfind structures.
func (g *Grid) union(p, q int) error {
	if err := g.perc.Union(p, q); err != nil {
		return err
	}

	return g.full.Union(p, q)
}

// validate reports ErrOutOfBounds if (row, col) is outside [1, N]².
func (g *Grid) validate(row, col int) error {
	if row < 1 || row > g.n {
		return fmt.Errorf("%w: row %d not in [1,%d]", ErrOutOfBounds, row, g.n)
	}
	if col < 1 || col > g.n {
		return fmt.Errorf("%w: column %d not in [1,%d]", ErrOutOfBounds, col, g.n)
	}

	return nil
}

// inBounds reports whether (row, col) lies within the grid.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// index maps (row, col) to the linear site index (row-1)*N + col.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + col
}

// site converts a linear site index back to (row, col).
func (g *Grid) site(idx int) Site {
	return Site{Row: (idx-1)/g.n + 1, Col: (idx-1)%g.n + 1}
}

func (g *Grid) top() int    { return 0 }
func (g *Grid) bottom() int { return g.n*g.n + 1 }
