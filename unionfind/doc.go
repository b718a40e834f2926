// Package unionfind provides a fixed-size disjoint-set (union–find) structure
// over the integer vertex universe [0, size).
//
// What:
//
//   - Weighted quick-union: the root of the smaller tree is attached under
//     the root of the larger one, bounding tree height by O(log n).
//   - Path halving in Find: every visited vertex is re-pointed to its
//     grandparent, so amortized cost approaches O(α(n)).
//   - Flat []int arrays indexed by vertex id. No pointers, no maps.
//
// Why:
//
//   - Dynamic connectivity: answer "are p and q connected?" while edges are
//     only ever added (percolation, Kruskal, image labelling).
//
// Complexity:
//
//   - New:           O(n) time, O(n) memory.
//   - Union/Find/Connected: O(α(n)) amortized.
//   - Count/Len:     O(1).
//
// Errors:
//
//   - ErrInvalidSize: negative universe size passed to New.
//   - ErrOutOfBounds: a vertex id outside [0, size).
//
// A UnionFind is not safe for concurrent use; Find mutates parent links.
package unionfind
