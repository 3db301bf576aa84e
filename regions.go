package aoc

// Region is a maximal 4-connected set of cells sharing one label.
type Region[T comparable] struct {
	Label T
	Cells []Pt

	set map[Pt]bool
}

// Regions partitions g into its regions. Seeds are taken in row-major order,
// so regions are returned in the order of their top-left-most cell.
func Regions[T comparable](g Grid[T]) []*Region[T] {
	var out []*Region[T]
	seen := make(map[Pt]bool)
	for y, row := range g {
		for x := range row {
			p := Pt{x, y}
			if seen[p] {
				continue
			}
			r := floodRegion(g, p)
			for _, c := range r.Cells {
				seen[c] = true
			}
			out = append(out, r)
		}
	}
	return out
}

// floodRegion collects the region containing start.
func floodRegion[T comparable](g Grid[T], start Pt) *Region[T] {
	r := &Region[T]{
		Label: g.At(start),
		set:   map[Pt]bool{start: true},
	}
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		r.Cells = append(r.Cells, p)
		for _, n := range g.Neighbors4(p) {
			if r.set[n] || g.At(n) != r.Label {
				continue
			}
			r.set[n] = true
			q.Push(n)
		}
		return true
	})
	return r
}

func (r *Region[T]) Size() int {
	return len(r.Cells)
}

func (r *Region[T]) Contains(p Pt) bool {
	return r.set[p]
}

// Perimeter counts the cell edges that face out of the region, including
// edges on the grid boundary.
func (r *Region[T]) Perimeter() int {
	n := 0
	for _, p := range r.Cells {
		p.ForImmediateNeighbors(func(q Pt) bool {
			if !r.set[q] {
				n++
			}
			return true
		})
	}
	return n
}

// corners lists, for each corner of a cell, the two orthogonal directions
// that meet there.
var corners = [4][2]Direction{
	{Up, Right},
	{Right, Down},
	{Down, Left},
	{Left, Up},
}

// Sides counts the straight fence segments bounding the region. A closed
// rectilinear boundary has as many sides as corners, so it counts corners
// instead: convex where both orthogonal neighbors are outside, concave where
// both are inside and the diagonal between them is not.
func (r *Region[T]) Sides() int {
	n := 0
	for _, p := range r.Cells {
		for _, c := range corners {
			a, b := p.Step(c[0]), p.Step(c[1])
			inA, inB := r.set[a], r.set[b]
			switch {
			case !inA && !inB:
				n++
			case inA && inB && !r.set[a.Step(c[1])]:
				n++
			}
		}
	}
	return n
}

// PerimeterPrice sums size*perimeter over regions.
func PerimeterPrice[T comparable](regions []*Region[T]) int {
	total := 0
	for _, r := range regions {
		total += r.Size() * r.Perimeter()
	}
	return total
}

// SidesPrice sums size*sides over regions.
func SidesPrice[T comparable](regions []*Region[T]) int {
	total := 0
	for _, r := range regions {
		total += r.Size() * r.Sides()
	}
	return total
}
