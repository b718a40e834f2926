package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates a negative universe size.
	ErrInvalidSize = errors.New("unionfind: size must be non-negative")
	// ErrOutOfBounds indicates a vertex id outside [0, size).
	ErrOutOfBounds = errors.New("unionfind: vertex out of bounds")
)

// UnionFind partitions the vertices [0, Len()) into disjoint components.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}
