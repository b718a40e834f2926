package percolation

import (
	"container/list"
)

// MinOpenToPercolate returns a smallest set of blocked sites whose opening
// would make the Grid percolate, ordered from the top row downwards.
// It returns an empty slice if the Grid already percolates. The Grid is not
// modified.
//
// Behavior:
//  1. Seed a 0–1 BFS with every row-1 site: open sites cost 0, blocked 1.
//  2. Stepping into an open site costs 0, into a blocked site 1.
//  3. Stop at the first row-N site taken off the deque.
//  4. Walk predecessors back and collect the blocked sites on the path.
//
// Complexity: O(N²·d) time, O(N²) memory.
func (g *Grid) MinOpenToPercolate() []Site {
	if g.Percolates() {
		return []Site{}
	}

	type entry struct{ idx, dist int }
	const inf = int(^uint(0) >> 1)
	dist := make([]int, len(g.open))
	prev := make([]int, len(g.open))
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	cost := func(idx int) int {
		if g.open[idx] {
			return 0
		}
		return 1
	}

	// 0–1 BFS: cost-0 steps at the front, cost-1 steps at the back.
	dq := list.New()
	for c := 1; c <= g.n; c++ {
		i := g.index(1, c)
		dist[i] = cost(i)
		if dist[i] == 0 {
			dq.PushFront(entry{i, 0})
		} else {
			dq.PushBack(entry{i, 1})
		}
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(entry)
		if u.dist > dist[u.idx] {
			continue // stale
		}
		s := g.site(u.idx)
		if s.Row == g.n {
			target = u.idx
			break
		}
		for _, d := range g.offsets {
			r, c := s.Row+d[0], s.Col+d[1]
			if !g.inBounds(r, c) {
				continue
			}
			v := g.index(r, c)
			step := cost(v)
			nd := u.dist + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u.idx
				if step == 0 {
					dq.PushFront(entry{v, nd})
				} else {
					dq.PushBack(entry{v, nd})
				}
			}
		}
	}

	// Every blocked site can be opened, so a bottom-row site is always reached.
	var sites []Site
	for at := target; at > 0; at = prev[at] {
		if !g.open[at] {
			sites = append([]Site{g.site(at)}, sites...)
		}
	}

	return sites
}
