package aoc

// ExploreDescending walks every trail leaving source, where each step moves
// to an orthogonal neighbor whose value is exactly one lower. The result maps
// each reached cell to the number of distinct trails from source ending
// there; source itself maps to 1.
//
// Values drop by one per step, so the BFS visits cells level by level and a
// cell is only popped once all of its predecessors have added their counts.
func ExploreDescending(g Grid[int], source Pt) map[Pt]int {
	counts := map[Pt]int{source: 1}
	q := NewQueue(source)
	q.While(func(p Pt) bool {
		want := g.At(p) - 1
		for _, n := range g.Neighbors4(p) {
			if g.At(n) != want {
				continue
			}
			if _, ok := counts[n]; !ok {
				q.Push(n)
			}
			counts[n] += counts[p]
		}
		return true
	})
	return counts
}

// TrailStats explores from every cell valued high. pairs counts the
// (high, low) cell pairs joined by at least one trail; trails counts every
// distinct trail between them.
func TrailStats(g Grid[int], high, low int) (pairs, trails int) {
	for _, src := range g.FindAll(func(v int) bool { return v == high }) {
		for p, n := range ExploreDescending(g, src) {
			if g.At(p) != low {
				continue
			}
			pairs++
			trails += n
		}
	}
	return pairs, trails
}
