package aoc

// TurnPenalty is the extra cost of a move made in a different heading from
// the previous move.
const TurnPenalty = 1000

// SearchState is a position reached with a heading at an accumulated cost.
type SearchState struct {
	Pt   Pt
	Dir  Direction
	Cost int
}

func (s SearchState) key() Path {
	return Path{Pt: s.Pt, Dir: s.Dir}
}

type searchNode struct {
	SearchState
	parent *searchNode
}

// path walks the parent chain back to the start and returns it in walking
// order.
func (n *searchNode) path() []SearchState {
	var out []SearchState
	for ; n != nil; n = n.parent {
		out = append(out, n.SearchState)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// moveCost is the cost of stepping in heading to after arriving in heading
// from. Turning is free until a move is made in the new heading.
func moveCost(from, to Direction) int {
	if from == to {
		return 1
	}
	return 1 + TurnPenalty
}

// ShortestPath finds a cheapest walk from start to end over cells accepted
// by open, starting with the given heading. The returned states run from
// start to end and the last one carries the total cost. It reports false
// when end cannot be reached.
//
// States are keyed on (position, heading) since one cell can be reached
// cheaply in one heading and expensively in another. Among equal cost
// frontier states the pop order is unspecified.
func ShortestPath[T any](g Grid[T], start, end Pt, heading Direction, open func(T) bool) ([]SearchState, bool) {
	pq := MinQueue[*searchNode]()
	pq.Push(&PQI[*searchNode]{V: &searchNode{SearchState: SearchState{Pt: start, Dir: heading}}})
	visited := make(map[Path]bool)
	for pq.Len() > 0 {
		cur := pq.Pop().V
		if cur.Pt == end {
			return cur.path(), true
		}
		if visited[cur.key()] {
			continue
		}
		visited[cur.key()] = true
		for _, d := range Directions {
			n := cur.Pt.Step(d)
			if v, ok := g.AtOk(n); !ok || !open(v) || visited[Path{n, d}] {
				continue
			}
			cost := cur.Cost + moveCost(cur.Dir, d)
			pq.Push(&PQI[*searchNode]{
				V: &searchNode{
					SearchState: SearchState{Pt: n, Dir: d, Cost: cost},
					parent:      cur,
				},
				P: cost,
			})
		}
	}
	return nil, false
}

// BestPathTiles runs the same search as ShortestPath but keeps every optimal
// predecessor of each state. It returns the optimal cost and the set of
// cells lying on at least one optimal walk, including start and end.
//
// Each state has one queue item whose priority is lowered in place when a
// cheaper way in is found. A popped state is settled.
func BestPathTiles[T any](g Grid[T], start, end Pt, heading Direction, open func(T) bool) (cost int, tiles map[Pt]bool, ok bool) {
	first := &PQI[Path]{V: Path{start, heading}}
	items := map[Path]*PQI[Path]{first.V: first}
	preds := make(map[Path][]Path)
	pq := MinQueue[Path]()
	pq.Push(first)

	best := -1
	var goals []Path
	for pq.Len() > 0 {
		if best >= 0 && pq.Peek().P > best {
			break
		}
		it := pq.Pop()
		cur, c := it.V, it.P
		if cur.Pt == end {
			best = c
			goals = append(goals, cur)
			continue
		}
		for _, d := range Directions {
			n := Path{cur.Pt.Step(d), d}
			if v, ok := g.AtOk(n.Pt); !ok || !open(v) {
				continue
			}
			nc := c + moveCost(cur.Dir, d)
			ni, seen := items[n]
			switch {
			case !seen:
				ni = &PQI[Path]{V: n, P: nc}
				items[n] = ni
				preds[n] = []Path{cur}
				pq.Push(ni)
			case !ni.Queued():
			case nc < ni.P:
				ni.P = nc
				preds[n] = []Path{cur}
				pq.Update(ni)
			case nc == ni.P:
				preds[n] = append(preds[n], cur)
			}
		}
	}
	if best < 0 {
		return 0, nil, false
	}

	tiles = make(map[Pt]bool)
	seen := make(map[Path]bool)
	var st Stack[Path]
	for _, gl := range goals {
		st.Push(gl)
	}
	st.While(func(p Path) bool {
		if seen[p] {
			return true
		}
		seen[p] = true
		tiles[p.Pt] = true
		for _, pp := range preds[p] {
			st.Push(pp)
		}
		return true
	})
	return best, tiles, true
}
