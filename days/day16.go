package days

import (
	"fmt"

	"github.com/maisem/aoc24"
)

type day16 struct{}

type maze struct {
	grid       aoc.Grid[rune]
	start, end aoc.Pt
}

func (day16) Parse(input string) (*maze, error) {
	g, err := aoc.ParseGrid(input, func(r rune) (rune, error) {
		switch r {
		case '#', '.', 'S', 'E':
			return r, nil
		}
		return 0, fmt.Errorf("invalid tile %q", r)
	})
	if err != nil {
		return nil, err
	}
	m := &maze{grid: g}
	var ok bool
	if m.start, ok = g.Find(func(r rune) bool { return r == 'S' }); !ok {
		return nil, fmt.Errorf("%w: missing start position", aoc.ErrInvalidInput)
	}
	if m.end, ok = g.Find(func(r rune) bool { return r == 'E' }); !ok {
		return nil, fmt.Errorf("%w: missing end position", aoc.ErrInvalidInput)
	}
	return m, nil
}

func open(r rune) bool { return r != '#' }

// Part1 is the lowest score from S to E for a reindeer starting east.
/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func (day16) Part1(m *maze) (any, error) {
	path, ok := aoc.ShortestPath(m.grid, m.start, m.end, aoc.Right, open)
	if !ok {
		return nil, fmt.Errorf("path from %v to %v: %w", m.start, m.end, aoc.ErrNotFound)
	}
	return path[len(path)-1].Cost, nil
}

// Part2 counts the tiles that are part of at least one best path.
// want=45
func (day16) Part2(m *maze) (any, error) {
	_, tiles, ok := aoc.BestPathTiles(m.grid, m.start, m.end, aoc.Right, open)
	if !ok {
		return nil, fmt.Errorf("path from %v to %v: %w", m.start, m.end, aoc.ErrNotFound)
	}
	return len(tiles), nil
}
