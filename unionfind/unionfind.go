package unionfind

import "fmt"

// New constructs a UnionFind of n vertices, each in its own component.
// Returns ErrInvalidSize if n < 0. An empty universe (n == 0) is valid.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of vertices in the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint components.
func (uf *UnionFind) Count() int {
	return uf.count
}

// validate reports ErrOutOfBounds if p is not a vertex id.
func (uf *UnionFind) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfBounds, p, len(uf.parent))
	}

	return nil
}

// root walks to the root of p, halving the path on the way.
// p must already be validated.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// Find returns the representative root of p's component.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// Connected reports whether p and q belong to the same component.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// ComponentSize returns the number of vertices in p's component.
func (uf *UnionFind) ComponentSize(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.size[uf.root(p)], nil
}

// Union merges the components containing p and q. The root of the smaller
// tree is attached under the root of the larger; on a tie q's root goes under
// p's. Calling Union on already connected vertices is a no-op.
// Both ids are checked before anything is mutated.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(p, q int) error {
	if err := uf.validate(p); err != nil {
		return err
	}
	if err := uf.validate(q); err != nil {
		return err
	}

	rp, rq := uf.root(p), uf.root(q)
	if rp == rq {
		return nil
	}
	if uf.size[rp] < uf.size[rq] {
		rp, rq = rq, rp
	}
	uf.parent[rq] = rp
	uf.size[rp] += uf.size[rq]
	uf.count--

	return nil
}
