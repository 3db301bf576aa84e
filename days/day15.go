package days

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc24"
)

type day15 struct{}

type warehouse struct {
	grid  aoc.Grid[rune]
	robot aoc.Pt
	moves []aoc.Direction
}

func (day15) Parse(input string) (*warehouse, error) {
	layout, moves, ok := strings.Cut(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n")
	if !ok {
		return nil, fmt.Errorf("%w: missing blank line before moves", aoc.ErrInvalidInput)
	}
	g, err := aoc.ParseGrid(layout, func(r rune) (rune, error) {
		switch r {
		case '#', '.', 'O', '@':
			return r, nil
		}
		return 0, fmt.Errorf("invalid tile %q", r)
	})
	if err != nil {
		return nil, err
	}
	w := &warehouse{grid: g}
	if w.robot, ok = g.Find(func(r rune) bool { return r == '@' }); !ok {
		return nil, fmt.Errorf("%w: no robot", aoc.ErrInvalidInput)
	}
	for _, r := range moves {
		if r == '\n' || r == ' ' {
			continue
		}
		d, ok := aoc.ParseDirection(r)
		if !ok {
			return nil, fmt.Errorf("%w: invalid move %q", aoc.ErrInvalidInput, r)
		}
		w.moves = append(w.moves, d)
	}
	return w, nil
}

// widen doubles every tile horizontally; boxes become [].
func (w *warehouse) widen() {
	g := make(aoc.Grid[rune], len(w.grid))
	for y, row := range w.grid {
		var sb strings.Builder
		for _, r := range row {
			switch r {
			case 'O':
				sb.WriteString("[]")
			case '@':
				sb.WriteString("@.")
			default:
				sb.WriteRune(r)
				sb.WriteRune(r)
			}
		}
		g[y] = []rune(sb.String())
	}
	w.grid = g
	w.robot.X *= 2
}

// push moves the robot one step in d together with every box in front of
// it, unless something hits a wall. Cells are gathered breadth first, so
// they are ordered by distance along d and are shifted farthest first.
func (w *warehouse) push(d aoc.Direction) {
	vertical := d == aoc.Up || d == aoc.Down
	var moving []aoc.Pt
	seen := make(map[aoc.Pt]bool)
	q := aoc.NewQueue(w.robot)
	for q.Len() > 0 {
		p := q.MustPop()
		if seen[p] {
			continue
		}
		seen[p] = true
		moving = append(moving, p)
		n := p.Step(d)
		switch w.grid.At(n) {
		case '#':
			return
		case 'O':
			q.Push(n)
		case '[':
			q.Push(n)
			if vertical {
				q.Push(n.Step(aoc.Right))
			}
		case ']':
			q.Push(n)
			if vertical {
				q.Push(n.Step(aoc.Left))
			}
		}
	}
	for i := len(moving) - 1; i >= 0; i-- {
		p := moving[i]
		w.grid.Set(p.Step(d), w.grid.At(p))
		w.grid.Set(p, '.')
	}
	w.robot = w.robot.Step(d)
}

// gps sums 100*y+x over the boxes' left edges.
func (w *warehouse) gps() int {
	sum := 0
	for _, p := range w.grid.FindAll(func(r rune) bool { return r == 'O' || r == '[' }) {
		sum += 100*p.Y + p.X
	}
	return sum
}

func (w *warehouse) run() int {
	for _, d := range w.moves {
		w.push(d)
	}
	return w.gps()
}

/*
want=2028

########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
*/
func (day15) Part1(w *warehouse) (any, error) {
	return w.run(), nil
}

/*
want=618

#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vv<<^^<<^^
*/
func (day15) Part2(w *warehouse) (any, error) {
	w.widen()
	return w.run(), nil
}
