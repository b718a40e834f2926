// Package percolation models site percolation on an N×N grid.
//
// Each site is blocked or open. Sites are opened one at a time and the Grid
// answers, after every step:
//
//   - IsFull(r, c): is the open site connected to the top row through a chain
//     of open neighbors?
//   - Percolates(): is some bottom-row site full?
//
// How:
//
//	Two unionfind structures share the linear index space (r-1)*N + c.
//	Both hold a virtual top vertex 0 joined to every row-1 site. Only the
//	percolation structure also holds a virtual bottom vertex N²+1 joined to
//	every row-N site, which turns Percolates into a single Connected query.
//	IsFull consults the structure without the bottom vertex, so a bottom-row
//	site is never reported full just because the grid percolates elsewhere
//	("backwash").
//
//	    top(0)
//	   ╱  │  ╲
//	  (1)(2)(3)      row 1
//	  (4)(5)(6)      row 2
//	  (7)(8)(9)      row 3
//	   ╲  │  ╱
//	  bottom(10)     percolation structure only
//
// Beyond the core queries the Grid offers Clusters (open-site components
// found by BFS) and MinOpenToPercolate (fewest blocked sites to open, via
// 0-1 BFS).
//
// Complexity:
//
//   - New:         O(N²) time and memory.
//   - Open/IsFull: O(α(N²)) amortized.
//   - IsOpen, Percolates: O(1) plus one Connected query.
//   - Clusters, MinOpenToPercolate: O(N²·d), d = 4 or 8 neighbors.
//
// Errors:
//
//   - ErrInvalidSize: N < 1.
//   - ErrOutOfBounds: row or column outside [1, N].
//   - ErrInvalidConnectivity: unknown Connectivity option.
//
// A Grid is not safe for concurrent use. Guard every call with one lock if
// several goroutines share it.
package percolation
