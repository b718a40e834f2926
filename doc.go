// Package percolation is the module root for site percolation on N×N grids.
//
// What is in here:
//
//	unionfind/      — fixed-size weighted quick-union with path halving
//	percolation/    — Grid: Open, IsOpen, IsFull, Percolates without backwash,
//	                  plus Clusters and MinOpenToPercolate
//	cmd/percolate/  — replay an input file of opened sites and report the result
//
// Quick ASCII example (# open, . blocked):
//
//	# . .
//	# # .
//	. # .
//
// The open chain (1,1)→(2,1)→(2,2)→(3,2) links the top row to the bottom,
// so the grid percolates and all four sites are full.
//
//	go get github.com/katalvlaran/percolation
package percolation
