package percolation

// Clusters finds all maximal groups of mutually connected open sites,
// using the Grid's connectivity. Clusters are listed in row-major order of
// their first site; each cluster's Sites are in BFS visit order.
//
// Clusters walks the open-state array directly and does not consult the
// unionfind structures, so it serves as an independent check of IsFull:
// an open site is full exactly when its cluster has TouchesTop.
//
// Time:   O(N²·d), where d = 4 or 8.
// Memory: O(N²) for visited flags and output.
func (g *Grid) Clusters() []Cluster {
	seen := make([]bool, len(g.open))
	var clusters []Cluster

	for i0 := 1; i0 < len(g.open); i0++ {
		if !g.open[i0] || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var cl Cluster

		for qi := 0; qi < len(queue); qi++ {
			s := g.site(queue[qi])
			cl.Sites = append(cl.Sites, s)
			if s.Row == 1 {
				cl.TouchesTop = true
			}
			if s.Row == g.n {
				cl.TouchesBottom = true
			}
			for _, d := range g.offsets {
				r, c := s.Row+d[0], s.Col+d[1]
				if !g.inBounds(r, c) {
					continue
				}
				vi := g.index(r, c)
				if g.open[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		clusters = append(clusters, cl)
	}

	return clusters
}
