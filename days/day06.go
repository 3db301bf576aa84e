package days

import (
	"fmt"

	"github.com/maisem/aoc24"
)

type day06 struct{}

type lab struct {
	grid  aoc.Grid[rune] // '.' or '#'
	guard aoc.Path
}

func (day06) Parse(input string) (*lab, error) {
	g, err := aoc.ParseGrid(input, func(r rune) (rune, error) {
		switch r {
		case '.', '#', '^', '>', 'v', '<':
			return r, nil
		}
		return 0, fmt.Errorf("invalid char %q", r)
	})
	if err != nil {
		return nil, err
	}
	start, ok := g.Find(func(r rune) bool {
		_, ok := aoc.ParseDirection(r)
		return ok
	})
	if !ok {
		return nil, fmt.Errorf("%w: no guard", aoc.ErrInvalidInput)
	}
	dir, _ := aoc.ParseDirection(g.At(start))
	g.Set(start, '.')
	return &lab{grid: g, guard: aoc.Path{Pt: start, Dir: dir}}, nil
}

// patrol walks the guard until it leaves the lab or loops. The walk is
// deterministic over a finite set of (position, heading) states, so seeing
// a state twice means the guard is stuck in a loop.
func (l *lab) patrol() (visited map[aoc.Pt]bool, loops bool) {
	visited = make(map[aoc.Pt]bool)
	seen := make(map[aoc.Path]bool)
	cur := l.guard
	for {
		if seen[cur] {
			return visited, true
		}
		seen[cur] = true
		visited[cur.Pt] = true
		next, ok := l.grid.Move(cur)
		if !ok {
			return visited, false
		}
		if l.grid.At(next.Pt) == '#' {
			cur.Dir = cur.Dir.Turn(true)
			continue
		}
		cur = next
	}
}

/*
want=41

....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
*/
func (day06) Part1(l *lab) (any, error) {
	visited, _ := l.patrol()
	return len(visited), nil
}

// Part2 counts the cells where one new obstruction traps the guard. Only
// cells on the original route can change it.
// want=6
func (day06) Part2(l *lab) (any, error) {
	route, _ := l.patrol()
	n := 0
	for p := range route {
		if p == l.guard.Pt {
			continue
		}
		err := l.grid.Scoped(p, '#', func() error {
			if _, loops := l.patrol(); loops {
				n++
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}
