package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a grid dimension N < 1.
	ErrInvalidSize = errors.New("percolation: grid size must be at least 1")
	// ErrOutOfBounds indicates a row or column outside [1, N].
	ErrOutOfBounds = errors.New("percolation: site out of bounds")
	// ErrInvalidConnectivity indicates an unknown Connectivity value.
	ErrInvalidConnectivity = errors.New("percolation: unknown connectivity")
)

// Connectivity selects which neighbors are joined when a site opens.
type Connectivity int

const (
	// Conn4 joins the orthogonal neighbors: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 also joins the four diagonal neighbors.
	Conn8
)

// Options holds tunable parameters for a Grid.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Option configures Options.
type Option func(*Options)

// WithConnectivity returns an Option that sets the neighbor connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// DefaultOptions returns Options with Conn = Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Site addresses one grid cell, 1-indexed.
type Site struct {
	Row, Col int
}

// Cluster is a maximal set of mutually connected open sites.
type Cluster struct {
	// Sites in BFS visit order, starting from the row-major smallest site.
	Sites []Site
	// TouchesTop reports whether any site lies in row 1.
	TouchesTop bool
	// TouchesBottom reports whether any site lies in row N.
	TouchesBottom bool
}

// Grid is an N×N percolation system.
//
// open is indexed by the linear site index (1..N²); slot 0 is unused so the
// index doubles as the unionfind vertex id. perc carries the virtual top (0)
// and bottom (N²+1) vertices, full only the virtual top.
type Grid struct {
	n         int
	open      []bool
	openCount int
	perc      *unionfind.UnionFind
	full      *unionfind.UnionFind
	conn      Connectivity
	offsets   [][2]int
}
